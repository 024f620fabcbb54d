package ponyo

// primitives is the catalogue of procedures defined in every global
// environment, in definition order.
var primitives = []struct {
	name string
	fn   PrimitiveFunc
}{
	// special forms
	{"quote", SyntaxQuote},
	{"if", SyntaxIf},
	{"cond", SyntaxCond},
	{"and", SyntaxAnd},
	{"or", SyntaxOr},
	{"define", SyntaxDefine},
	{"lambda", SyntaxLambda},
	{"let", SyntaxLet},
	{"set!", SyntaxSet},

	// numerics
	{"+", NumberAdd},
	{"-", NumberSub},
	{"*", NumberMul},
	{"/", NumberDiv},
	{"remainder", NumberRemainder},
	{"<", NumberLt},
	{"<=", NumberLte},
	{">", NumberGt},
	{">=", NumberGte},
	{"=", NumberEq},
	{"integer?", IntegerPred},

	// equivalence
	{"eq?", Eq},

	// booleans
	{"boolean?", BooleanPred},
	{"not", BooleanNot},

	// pairs and lists
	{"car", PairCar},
	{"cdr", PairCdr},
	{"cons", PairCons},
	{"set-car!", PairSetCar},
	{"set-cdr!", PairSetCdr},
	{"pair?", PairPred},
	{"null?", NullPred},
	{"list?", ListPred},
	{"length", ListLength},
	{"append", ListAppend},
	{"reverse", ListReverse},
	{"map", ListMap},

	// symbols
	{"symbol?", SymbolPred},
	{"symbol->string", SymbolToString},
	{"string->symbol", StringToSymbol},

	// strings
	{"string?", StringPred},
	{"string-length", StringLength},
	{"string-append", StringAppend},

	// procedures
	{"procedure?", ProcedurePred},
	{"apply", ProcedureApply},

	// input and output
	{"display", Display},
	{"newline", Newline},
	{"read", Read},
	{"load", Load},
}
