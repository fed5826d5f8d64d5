// Package formula holds formula expression trees and the passes that keep
// their range references bound to the grid.
package formula

import (
	"strconv"
	"strings"

	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
)

// Node is a formula expression node.
type Node interface {
	// String renders the node back to formula text.
	String() string
}

// NumberNode represents a numeric constant.
type NumberNode struct {
	Value float64
}

func (n *NumberNode) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// StringNode represents a string constant.
type StringNode struct {
	Value string
}

func (n *StringNode) String() string {
	return `"` + strings.ReplaceAll(n.Value, `"`, `""`) + `"`
}

// CellRefNode represents a single-cell variable reference.
type CellRefNode struct {
	Ref models.Endpoint
}

func (n *CellRefNode) String() string {
	return n.Ref.String()
}

// RangeNode represents a rectangular range operand, e.g. the argument of
// SUM(A0:B9).
type RangeNode struct {
	Left  models.Endpoint
	Right models.Endpoint
}

func (n *RangeNode) String() string {
	return n.Left.String() + ":" + n.Right.String()
}

// UnaryOpNode represents a prefix operator or the postfix percent operator.
type UnaryOpNode struct {
	Operator string
	Operand  Node
	Postfix  bool
}

func (n *UnaryOpNode) String() string {
	operand := n.Operand.String()
	if _, ok := n.Operand.(*BinaryOpNode); ok {
		operand = "(" + operand + ")"
	}
	if n.Postfix {
		return operand + n.Operator
	}
	return n.Operator + operand
}

// BinaryOpNode represents an infix operator.
type BinaryOpNode struct {
	Operator string
	Left     Node
	Right    Node
}

func (n *BinaryOpNode) String() string {
	prec := precedence[n.Operator]
	return operandString(n.Left, prec, false) + n.Operator + operandString(n.Right, prec, true)
}

// FunctionCallNode represents a function call.
type FunctionCallNode struct {
	Name string
	Args []Node
}

func (n *FunctionCallNode) String() string {
	args := make([]string, len(n.Args))
	for i, arg := range n.Args {
		args[i] = arg.String()
	}
	return n.Name + "(" + strings.Join(args, ",") + ")"
}

// precedence of infix operators, loosest first.
var precedence = map[string]int{
	"=":  1,
	"<>": 1,
	"<":  1,
	">":  1,
	"<=": 1,
	">=": 1,
	"&":  2,
	"+":  3,
	"-":  3,
	"*":  4,
	"/":  4,
	"^":  5,
}

// operandString parenthesizes a binary child that binds looser than its
// parent, or as tightly on the right side (operators are left associative).
func operandString(n Node, parent int, right bool) string {
	b, ok := n.(*BinaryOpNode)
	if !ok {
		return n.String()
	}
	prec := precedence[b.Operator]
	if prec < parent || (right && prec == parent) {
		return "(" + b.String() + ")"
	}
	return b.String()
}
