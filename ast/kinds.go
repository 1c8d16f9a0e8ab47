// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

// Kind tags which of the fixed set of node variants a Node is. The set
// is deliberately small: just enough shapes to exercise every Child
// category a real grammar needs (scalar leaf, single child, optional
// child, node list, optional node list), not a full grammar.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindProgram
	KindNumericLiteral
	KindBooleanLiteral
	KindIdentifier
	KindStringLiteral
	KindUnaryExpression
	KindBinaryExpression
	KindLogicalExpression
	KindUpdateExpression
	KindAssignmentExpression
	KindExpressionStatement
	KindBlockStatement
	KindIfStatement
	KindMemberExpression
	KindCallExpression
	KindArrayExpression
	KindVariableDeclarator
	KindVariableDeclaration
	KindFunctionDeclaration
	KindReturnStatement
	numKinds
)

var kindNames = [numKinds]string{
	KindInvalid:               "<invalid>",
	KindProgram:                "Program",
	KindNumericLiteral:         "NumericLiteral",
	KindBooleanLiteral:         "BooleanLiteral",
	KindIdentifier:             "Identifier",
	KindStringLiteral:          "StringLiteral",
	KindUnaryExpression:        "UnaryExpression",
	KindBinaryExpression:       "BinaryExpression",
	KindLogicalExpression:      "LogicalExpression",
	KindUpdateExpression:       "UpdateExpression",
	KindAssignmentExpression:   "AssignmentExpression",
	KindExpressionStatement:    "ExpressionStatement",
	KindBlockStatement:         "BlockStatement",
	KindIfStatement:            "IfStatement",
	KindMemberExpression:       "MemberExpression",
	KindCallExpression:         "CallExpression",
	KindArrayExpression:        "ArrayExpression",
	KindVariableDeclarator:     "VariableDeclarator",
	KindVariableDeclaration:    "VariableDeclaration",
	KindFunctionDeclaration:    "FunctionDeclaration",
	KindReturnStatement:        "ReturnStatement",
}

func (k Kind) String() string {
	if k >= numKinds {
		return "<unknown-kind>"
	}
	return kindNames[k]
}

// childSlot identifies which physical Node field a schema entry reads
// from. A kind's plain NodeList field uses slotList; Program is the only
// kind with a second list-shaped field (its optional Directives), which
// uses slotList2.
type childSlot uint8

const (
	slotChild1 childSlot = iota
	slotChild2
	slotChild3
	slotList
	slotList2
)

// fieldSpec names one child-shaped field of a Kind for the generic
// walkers in child.go and visitor.go.
type fieldSpec struct {
	name     string
	category ChildCategory
	slot     childSlot
}

// kindSchemas maps each Kind to the ordered list of its child-shaped
// fields, in declaration order. Scalar-only fields (Num, Str, flags, Op)
// are read directly by kind-specific accessors below and are not part of
// this table, since the generic walkers only ever need to recurse into
// node-shaped children.
var kindSchemas = map[Kind][]fieldSpec{
	KindProgram: {
		{"Body", ChildNodeList, slotList},
		{"Directives", ChildOptionalNodeList, slotList2},
	},
	KindNumericLiteral:       nil,
	KindBooleanLiteral:       nil,
	KindIdentifier:           nil,
	KindStringLiteral:        nil,
	KindUnaryExpression: {
		{"Argument", ChildSingleNode, slotChild1},
	},
	KindBinaryExpression: {
		{"Left", ChildSingleNode, slotChild1},
		{"Right", ChildSingleNode, slotChild2},
	},
	KindLogicalExpression: {
		{"Left", ChildSingleNode, slotChild1},
		{"Right", ChildSingleNode, slotChild2},
	},
	KindUpdateExpression: {
		{"Argument", ChildSingleNode, slotChild1},
	},
	KindAssignmentExpression: {
		{"Left", ChildSingleNode, slotChild1},
		{"Right", ChildSingleNode, slotChild2},
	},
	KindExpressionStatement: {
		{"Expression", ChildSingleNode, slotChild1},
	},
	KindBlockStatement: {
		{"Body", ChildNodeList, slotList},
	},
	KindIfStatement: {
		{"Test", ChildSingleNode, slotChild1},
		{"Consequent", ChildSingleNode, slotChild2},
		{"Alternate", ChildOptionalNode, slotChild3},
	},
	KindMemberExpression: {
		{"Object", ChildSingleNode, slotChild1},
		{"Property", ChildSingleNode, slotChild2},
	},
	KindCallExpression: {
		{"Callee", ChildSingleNode, slotChild1},
		{"Arguments", ChildNodeList, slotList},
	},
	KindArrayExpression: {
		{"Elements", ChildNodeList, slotList},
	},
	KindVariableDeclarator: {
		{"Id", ChildSingleNode, slotChild1},
		{"Init", ChildOptionalNode, slotChild2},
	},
	KindVariableDeclaration: {
		{"Declarations", ChildNodeList, slotList},
	},
	KindFunctionDeclaration: {
		{"Id", ChildOptionalNode, slotChild1},
		{"Params", ChildNodeList, slotList},
		{"Body", ChildSingleNode, slotChild2},
	},
	KindReturnStatement: {
		{"Argument", ChildOptionalNode, slotChild1},
	},
}

// Template describes the node a ViewSession is about to allocate: a
// Kind plus the scalar and child values appropriate to it. Templates are
// built with the per-kind constructors below rather than by poking at
// fields directly, so a caller can't build a Kind/field combination the
// schema table doesn't expect.
type Template struct {
	kind   Kind
	meta   NodeMetadata
	num    float64
	str    Atom
	strBuf []uint16
	flag1  bool
	flag2  bool
	op     uint8
	c1     *Node
	c2     *Node
	c3     *Node
	list     []*Node
	listSet  bool
	list2    []*Node
	list2Set bool
}

func (t Template) apply(n *Node) {
	n.kind = t.kind
	n.meta = t.meta
	n.num = t.num
	n.str = t.str
	n.strBuf = t.strBuf
	n.flag1 = t.flag1
	n.flag2 = t.flag2
	n.op = t.op
	n.child1 = t.c1
	n.child2 = t.c2
	n.child3 = t.c3
	n.list = t.list
	n.listSet = t.listSet
	n.list2 = t.list2
	n.list2Set = t.list2Set
}

// NewProgram builds a template for a Program node. directives is the
// optional leading directive-prologue list; pass directivesPresent=false
// for "no directive prologue was recorded" as opposed to true with an
// empty slice for "recorded, and empty". The two are distinguished by
// the presence flag, not by nil-ness of the slice.
func NewProgram(rng SourceRange, body []*Node, directives []*Node, directivesPresent bool) Template {
	return Template{
		kind: KindProgram, meta: NodeMetadata{rng},
		list: body, listSet: true,
		list2: directives, list2Set: directivesPresent,
	}
}

func NewNumericLiteral(rng SourceRange, value float64) Template {
	return Template{kind: KindNumericLiteral, meta: NodeMetadata{rng}, num: value}
}

func NewBooleanLiteral(rng SourceRange, value bool) Template {
	return Template{kind: KindBooleanLiteral, meta: NodeMetadata{rng}, flag1: value}
}

func NewIdentifier(rng SourceRange, name Atom) Template {
	return Template{kind: KindIdentifier, meta: NodeMetadata{rng}, str: name}
}

// NewStringLiteral builds a template for a StringLiteral. value is the
// literal's raw UTF-16 code units, exactly as lexed; unlike Identifier.Name
// it is not assumed to be well-formed text and is never interned, since a
// JS string literal may legally contain an unpaired surrogate that cannot
// round-trip through the AtomTable or Go's UTF-8 string type.
func NewStringLiteral(rng SourceRange, value []uint16) Template {
	return Template{kind: KindStringLiteral, meta: NodeMetadata{rng}, strBuf: value}
}

func NewUnaryExpression(rng SourceRange, op UnaryOperator, argument *Node, prefix bool) Template {
	return Template{kind: KindUnaryExpression, meta: NodeMetadata{rng}, op: uint8(op), c1: argument, flag1: prefix}
}

func NewBinaryExpression(rng SourceRange, op BinaryOperator, left, right *Node) Template {
	return Template{kind: KindBinaryExpression, meta: NodeMetadata{rng}, op: uint8(op), c1: left, c2: right}
}

func NewLogicalExpression(rng SourceRange, op LogicalOperator, left, right *Node) Template {
	return Template{kind: KindLogicalExpression, meta: NodeMetadata{rng}, op: uint8(op), c1: left, c2: right}
}

func NewUpdateExpression(rng SourceRange, op UpdateOperator, argument *Node, prefix bool) Template {
	return Template{kind: KindUpdateExpression, meta: NodeMetadata{rng}, op: uint8(op), c1: argument, flag1: prefix}
}

func NewAssignmentExpression(rng SourceRange, op AssignmentOperator, left, right *Node) Template {
	return Template{kind: KindAssignmentExpression, meta: NodeMetadata{rng}, op: uint8(op), c1: left, c2: right}
}

func NewExpressionStatement(rng SourceRange, expression *Node) Template {
	return Template{kind: KindExpressionStatement, meta: NodeMetadata{rng}, c1: expression}
}

func NewBlockStatement(rng SourceRange, body []*Node) Template {
	return Template{kind: KindBlockStatement, meta: NodeMetadata{rng}, list: body, listSet: true}
}

// NewIfStatement builds a template for an IfStatement. alternate may be
// nil for an if with no else-branch.
func NewIfStatement(rng SourceRange, test, consequent, alternate *Node) Template {
	return Template{kind: KindIfStatement, meta: NodeMetadata{rng}, c1: test, c2: consequent, c3: alternate}
}

func NewMemberExpression(rng SourceRange, object, property *Node, computed bool) Template {
	return Template{kind: KindMemberExpression, meta: NodeMetadata{rng}, c1: object, c2: property, flag2: computed}
}

func NewCallExpression(rng SourceRange, callee *Node, arguments []*Node) Template {
	return Template{kind: KindCallExpression, meta: NodeMetadata{rng}, c1: callee, list: arguments, listSet: true}
}

func NewArrayExpression(rng SourceRange, elements []*Node) Template {
	return Template{kind: KindArrayExpression, meta: NodeMetadata{rng}, list: elements, listSet: true}
}

// NewVariableDeclarator builds a template for a declarator. init may be
// nil for `let x;`.
func NewVariableDeclarator(rng SourceRange, id, init *Node) Template {
	return Template{kind: KindVariableDeclarator, meta: NodeMetadata{rng}, c1: id, c2: init}
}

func NewVariableDeclaration(rng SourceRange, declKind VariableDeclarationKind, declarations []*Node) Template {
	return Template{kind: KindVariableDeclaration, meta: NodeMetadata{rng}, op: uint8(declKind), list: declarations, listSet: true}
}

// NewFunctionDeclaration builds a template for a function declaration.
// id may be nil only for a default-exported anonymous function, which
// this grammar does not otherwise produce but which the schema
// deliberately allows so FunctionDeclaration.Id exercises the Option<node>
// category.
func NewFunctionDeclaration(rng SourceRange, id *Node, params []*Node, body *Node) Template {
	return Template{kind: KindFunctionDeclaration, meta: NodeMetadata{rng}, c1: id, list: params, listSet: true, c2: body}
}

func NewReturnStatement(rng SourceRange, argument *Node) Template {
	return Template{kind: KindReturnStatement, meta: NodeMetadata{rng}, c1: argument}
}

// --- Scalar accessors -------------------------------------------------

// NumberValue returns the literal value of a NumericLiteral node.
func (n *Node) NumberValue() float64 { return n.num }

// BoolValue returns the literal value of a BooleanLiteral node.
func (n *Node) BoolValue() bool { return n.flag1 }

// NameAtom returns the interned name of an Identifier node.
func (n *Node) NameAtom() Atom { return n.str }

// StringValue returns the raw UTF-16 code units of a StringLiteral node.
func (n *Node) StringValue() []uint16 { return n.strBuf }

// Prefix returns the Prefix flag of a Unary/UpdateExpression node.
func (n *Node) Prefix() bool { return n.flag1 }

// Computed returns the Computed flag of a MemberExpression node.
func (n *Node) Computed() bool { return n.flag2 }

// DeclarationKind returns the declaration keyword ("var", "let", "const")
// of a VariableDeclaration node.
func (n *Node) DeclarationKind() VariableDeclarationKind { return VariableDeclarationKind(n.op) }

// UnaryOp returns the operator of a UnaryExpression node.
func (n *Node) UnaryOp() UnaryOperator { return UnaryOperator(n.op) }

// BinaryOp returns the operator of a BinaryExpression node.
func (n *Node) BinaryOp() BinaryOperator { return BinaryOperator(n.op) }

// LogicalOp returns the operator of a LogicalExpression node.
func (n *Node) LogicalOp() LogicalOperator { return LogicalOperator(n.op) }

// UpdateOp returns the operator of an UpdateExpression node.
func (n *Node) UpdateOp() UpdateOperator { return UpdateOperator(n.op) }

// AssignmentOp returns the operator of an AssignmentExpression node.
func (n *Node) AssignmentOp() AssignmentOperator { return AssignmentOperator(n.op) }

// --- Node-shaped accessors ---------------------------------------------
//
// These expose the single/optional-child slots with names matching the
// schema table above, for callers that want direct field access instead
// of going through the generic Visit dispatch.

func (n *Node) Argument() *Node    { return n.child1 }
func (n *Node) Left() *Node        { return n.child1 }
func (n *Node) Right() *Node       { return n.child2 }
func (n *Node) Expression() *Node  { return n.child1 }
func (n *Node) Test() *Node        { return n.child1 }
func (n *Node) Consequent() *Node  { return n.child2 }
func (n *Node) Alternate() *Node   { return n.child3 }
func (n *Node) Object() *Node      { return n.child1 }
func (n *Node) Property() *Node    { return n.child2 }
func (n *Node) Callee() *Node      { return n.child1 }
func (n *Node) Id() *Node          { return n.child1 }
func (n *Node) Init() *Node        { return n.child2 }
func (n *Node) Body() *Node {
	if n.kind == KindFunctionDeclaration {
		return n.child2
	}
	return nil
}

// BodyList returns the statement list of a Program/BlockStatement node.
func (n *Node) BodyList() []*Node { return n.list }

// Arguments returns the argument list of a CallExpression node.
func (n *Node) Arguments() []*Node { return n.list }

// Elements returns the element list of an ArrayExpression node.
func (n *Node) Elements() []*Node { return n.list }

// Declarations returns the declarator list of a VariableDeclaration node.
func (n *Node) Declarations() []*Node { return n.list }

// Directives returns the directive prologue of a Program node and
// whether one was recorded at all.
func (n *Node) Directives() ([]*Node, bool) { return n.list2, n.list2Set }

// Params returns the parameter list of a FunctionDeclaration node.
func (n *Node) Params() []*Node { return n.list }
