package logger

// Nop — логгер-заглушка для тестов и необязательных зависимостей.
type Nop struct{}

func NewNop() Nop { return Nop{} }

func (Nop) Debug(string, ...Field) {}
func (Nop) Info(string, ...Field)  {}
func (Nop) Warn(string, ...Field)  {}
func (Nop) Error(string, ...Field) {}

func (n Nop) With(...Field) Logger { return n }
