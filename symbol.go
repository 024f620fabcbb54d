package ponyo

import "io"

// Symbol is an interned identifier. Symbols with the same name that were
// interned by the same Interpreter are the same *Symbol, so symbols are always
// compared by identity.
type Symbol struct {
	name string
}

// Name returns the text of the symbol.
func (s *Symbol) Name() string {
	return s.name
}

func (s *Symbol) write(w io.Writer) error {
	_, err := io.WriteString(w, s.name)
	return err
}

type symbolTable struct {
	index map[string]*Symbol
	order []*Symbol
}

func newSymbolTable() *symbolTable {
	return &symbolTable{index: map[string]*Symbol{}}
}

func (t *symbolTable) intern(name string) *Symbol {
	if sym, ok := t.index[name]; ok {
		return sym
	}
	sym := &Symbol{name: name}
	t.index[name] = sym
	t.order = append(t.order, sym)
	return sym
}

func SymbolPred(in *Interpreter, args []Value, env *Env) Value {
	checkArity("symbol?", args, 1, 1)
	_, ok := in.eval(args[0], env).(*Symbol)
	return Boolean(ok)
}

func SymbolToString(in *Interpreter, args []Value, env *Env) Value {
	checkArity("symbol->string", args, 1, 1)
	v := in.eval(args[0], env)
	sym, ok := v.(*Symbol)
	if !ok {
		panic(errorf("symbol->string", "expected symbol, got %s", typeName(v)))
	}
	return NewString(sym.name)
}

func StringToSymbol(in *Interpreter, args []Value, env *Env) Value {
	checkArity("string->symbol", args, 1, 1)
	return in.Intern(in.evalString("string->symbol", args[0], env).s)
}
