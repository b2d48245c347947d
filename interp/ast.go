package interp

// Node is an expression-tree node.
type Node interface{ node() }

type Literal struct{ Val any }

type Ident struct{ Name string }

type Unary struct {
	Op TokenType
	X  Node
}

type Binary struct {
	Op   TokenType
	X, Y Node
}

type Call struct {
	Name string
	Args []Node
}

type Index struct {
	X, I Node
}

// Assign is the one statement form: `name = expr`.
type Assign struct {
	Name string
	X    Node
}

type List struct{ Elems []Node }

func (Literal) node() {}
func (Ident) node()   {}
func (Unary) node()   {}
func (Binary) node()  {}
func (Call) node()    {}
func (Index) node()   {}
func (Assign) node()  {}
func (List) node()    {}
