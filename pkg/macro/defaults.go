package macro

// Defaults is the standard macro set: booleans, a few Church numerals,
// arithmetic and the Y combinator.
var Defaults = []Entry{
	{"TRUE", "λx.λy.x"},
	{"FALSE", "λx.λy.y"},
	{"AND", "λab.ab(λxy.y)"},
	{"OR", "λab.a(λxy.x)b"},
	{"NOT", "λa.a(λb.λc.c)(λd.λe.d)"},
	{"N2", "λs.λz.s(s(z))"},
	{"N3", "λs.λz.s(s(s(z)))"},
	{"SUCC", "λa.λb.λc.b(abc)"},
	{"+", "λp.λq.λx.λy.(px(qxy))"},
	{"TWICE", "λf.λx.f(fx)"},
	{"ID", "λx.x"},
	{"Y", "λy.(λx.y(xx))(λx.y(xx))"},
}

// Operators are the default macros that may also be used infix without
// backticks.
var Operators = []string{"AND", "OR"}
