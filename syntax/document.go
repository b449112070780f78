package syntax

// programDoc represents a program as it is encoded in YAML
type programDoc struct {
	Globals   []declDoc `yaml:"globals"`
	Functions []funcDoc `yaml:"functions"`
}

// declDoc represents a single declaration as it is encoded in YAML
type declDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// funcDoc represents a function definition as it is encoded in YAML
type funcDoc struct {
	Name   string    `yaml:"name"`
	Type   string    `yaml:"type"`
	Params []declDoc `yaml:"params,omitempty"`
	Locals []declDoc `yaml:"locals,omitempty"`
	Body   []stmtDoc `yaml:"body"`
}

// stmtDoc represents a statement as it is encoded in YAML.  Exactly one field
// must be set: the field determines the kind of the statement.
type stmtDoc struct {
	Skip   *struct{}  `yaml:"skip,omitempty"`
	Assign *assignDoc `yaml:"assign,omitempty"`
	Block  *[]stmtDoc `yaml:"block,omitempty"`
	If     *ifDoc     `yaml:"if,omitempty"`
	While  *whileDoc  `yaml:"while,omitempty"`
	Call   *callDoc   `yaml:"call,omitempty"`
	Return *exprDoc   `yaml:"return,omitempty"`
}

type assignDoc struct {
	Target string  `yaml:"target"`
	Source exprDoc `yaml:"source"`
}

type ifDoc struct {
	Test exprDoc   `yaml:"test"`
	Then []stmtDoc `yaml:"then"`
	Else []stmtDoc `yaml:"else,omitempty"`
}

type whileDoc struct {
	Test exprDoc   `yaml:"test"`
	Body []stmtDoc `yaml:"body"`
}

type callDoc struct {
	Name string    `yaml:"name"`
	Args []exprDoc `yaml:"args,omitempty"`
}

// exprDoc represents an expression as it is encoded in YAML.  Like stmtDoc,
// exactly one field must be set.  Literals are stored as their source text.
type exprDoc struct {
	Int    *string    `yaml:"int,omitempty"`
	Float  *string    `yaml:"float,omitempty"`
	Bool   *string    `yaml:"bool,omitempty"`
	Char   *string    `yaml:"char,omitempty"`
	Var    *string    `yaml:"var,omitempty"`
	Binary *binaryDoc `yaml:"binary,omitempty"`
	Unary  *unaryDoc  `yaml:"unary,omitempty"`
	Call   *callDoc   `yaml:"call,omitempty"`
}

type binaryDoc struct {
	Op    string  `yaml:"op"`
	Left  exprDoc `yaml:"left"`
	Right exprDoc `yaml:"right"`
}

type unaryDoc struct {
	Op      string  `yaml:"op"`
	Operand exprDoc `yaml:"operand"`
}
