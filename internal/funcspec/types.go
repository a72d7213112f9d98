package funcspec

import (
	"parser-generator/internal/model"
)

// TypeVariable is a function-level type parameter.
type TypeVariable struct {
	Name    string
	Bounds  []*model.TypeName
	Reified bool
}

// Param is a generated function parameter.
type Param struct {
	Name   string
	Type   *model.TypeName
	Vararg bool
}

// Func is a generated function specification.
type Func struct {
	Name string
	// Receiver is the extension receiver, nil for plain functions.
	Receiver      *model.TypeName
	Inline        bool
	TypeVariables []TypeVariable
	Params        []Param
	Returns       *model.TypeName
	Body          []Statement
	// Owner is the declaration the function was synthesized from.
	Owner model.ClassName
}

// ParamNames returns the parameter names in order.
func (f *Func) ParamNames() []string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}

	return names
}

// Statement is one statement of a function body.
type Statement interface {
	isStatement()
}

// Local binds Name to Value.
type Local struct {
	Name  string
	Value Expr
}

// Return returns Value.
type Return struct {
	Value Expr
}

func (Local) isStatement()  {}
func (Return) isStatement() {}

// Expr is an expression in a function body.
type Expr interface {
	isExpr()
}

// Ref references a parameter or local by name; Spread expands a vararg.
type Ref struct {
	Name   string
	Spread bool
}

// Call invokes Func with Args. With a non-zero Static the call is made on
// that class, otherwise on the implicit receiver.
type Call struct {
	Static model.ClassName
	Func   string
	Args   []Expr
}

// New constructs Type with Args.
type New struct {
	Type *model.TypeName
	Args []Expr
}

// Anonymous constructs an anonymous subclass of Super through its no-argument constructor.
type Anonymous struct {
	Super *model.TypeName
}

// ArrayOf builds an array of Elem holding Elems in order; Spread passes it to a vararg.
type ArrayOf struct {
	Elem   *model.TypeName
	Elems  []Expr
	Spread bool
}

// ClassLiteral is the runtime class object of Class.
type ClassLiteral struct {
	Class model.ClassName
}

func (Ref) isExpr()          {}
func (Call) isExpr()         {}
func (New) isExpr()          {}
func (Anonymous) isExpr()    {}
func (ArrayOf) isExpr()      {}
func (ClassLiteral) isExpr() {}

// File is a separately assembled generated artifact.
type File struct {
	Name  string
	Funcs []Func
}
