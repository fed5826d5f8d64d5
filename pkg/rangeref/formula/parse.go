package formula

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/parser"
	"github.com/xuri/efp"
)

// ErrEmptyFormula indicates a formula without any tokens.
var ErrEmptyFormula = errors.New("empty formula")

// Resolver resolves grid coordinates to cell identities.
type Resolver interface {
	Lookat(row, col int) models.CellRef
}

// Context supplies the lookups Parse needs. Both fields are optional.
type Context struct {
	// Grid resolves references as they are parsed. Without it references
	// carry no epoch and must be rebound before use.
	Grid Resolver
	// Names looks up named ranges used as operands.
	Names func(name string) (*models.NamedRange, bool)
}

// Parse builds an expression tree from formula text such as
// "SUM(A0:B9)*2". A leading "=" is optional.
func Parse(text string, ctx *Context) (Node, error) {
	if ctx == nil {
		ctx = &Context{}
	}

	ps := efp.ExcelParser()
	var tokens []efp.Token
	for i, tok := range ps.Parse(strings.TrimPrefix(strings.TrimSpace(text), "=")) {
		if tok.TType == efp.TokenTypeWhitespace {
			continue
		}
		// efp prefixes the formula with "=" before tokenizing.
		if i == 0 && tok.TType == efp.TokenTypeOperatorInfix && tok.TValue == "=" {
			continue
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyFormula
	}

	b := &builder{tokens: tokens, ctx: ctx}
	n, err := b.expr(0)
	if err != nil {
		return nil, err
	}
	if tok, ok := b.peek(); ok {
		return nil, fmt.Errorf("unexpected %s %q", tok.TType, tok.TValue)
	}
	return n, nil
}

// builder turns the flat efp token stream into a tree by precedence
// climbing.
type builder struct {
	tokens []efp.Token
	pos    int
	ctx    *Context
}

func (b *builder) peek() (efp.Token, bool) {
	if b.pos >= len(b.tokens) {
		return efp.Token{}, false
	}
	return b.tokens[b.pos], true
}

func (b *builder) next() (efp.Token, bool) {
	tok, ok := b.peek()
	if ok {
		b.pos++
	}
	return tok, ok
}

func (b *builder) expr(minPrec int) (Node, error) {
	left, err := b.unary()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := b.peek()
		if !ok || tok.TType != efp.TokenTypeOperatorInfix {
			break
		}
		prec, known := precedence[tok.TValue]
		if !known {
			return nil, fmt.Errorf("unsupported operator %q", tok.TValue)
		}
		if prec < minPrec {
			break
		}
		b.pos++

		right, err := b.expr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &BinaryOpNode{Operator: tok.TValue, Left: left, Right: right}
	}

	return left, nil
}

func (b *builder) unary() (Node, error) {
	if tok, ok := b.peek(); ok && tok.TType == efp.TokenTypeOperatorPrefix {
		b.pos++
		operand, err := b.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryOpNode{Operator: tok.TValue, Operand: operand}, nil
	}

	n, err := b.primary()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := b.peek()
		if !ok || tok.TType != efp.TokenTypeOperatorPostfix {
			return n, nil
		}
		b.pos++
		n = &UnaryOpNode{Operator: tok.TValue, Operand: n, Postfix: true}
	}
}

func (b *builder) primary() (Node, error) {
	tok, ok := b.next()
	if !ok {
		return nil, errors.New("unexpected end of formula")
	}

	switch {
	case tok.TType == efp.TokenTypeOperand:
		return b.operand(tok)
	case tok.TType == efp.TokenTypeFunction && tok.TSubType == efp.TokenSubTypeStart:
		return b.call(tok.TValue)
	case tok.TType == efp.TokenTypeSubexpression && tok.TSubType == efp.TokenSubTypeStart:
		n, err := b.expr(0)
		if err != nil {
			return nil, err
		}
		closing, ok := b.next()
		if !ok || closing.TType != efp.TokenTypeSubexpression || closing.TSubType != efp.TokenSubTypeStop {
			return nil, errors.New("missing closing parenthesis")
		}
		return n, nil
	}

	return nil, fmt.Errorf("unexpected %s %q", tok.TType, tok.TValue)
}

func (b *builder) call(name string) (Node, error) {
	fn := &FunctionCallNode{Name: strings.ToUpper(name)}

	if tok, ok := b.peek(); ok && tok.TType == efp.TokenTypeFunction && tok.TSubType == efp.TokenSubTypeStop {
		b.pos++
		return fn, nil
	}

	for {
		arg, err := b.expr(0)
		if err != nil {
			return nil, err
		}
		fn.Args = append(fn.Args, arg)

		tok, ok := b.next()
		switch {
		case !ok:
			return nil, fmt.Errorf("unterminated call to %s", fn.Name)
		case tok.TType == efp.TokenTypeArgument:
			continue
		case tok.TType == efp.TokenTypeFunction && tok.TSubType == efp.TokenSubTypeStop:
			return fn, nil
		default:
			return nil, fmt.Errorf("unexpected %s %q in call to %s", tok.TType, tok.TValue, fn.Name)
		}
	}
}

func (b *builder) operand(tok efp.Token) (Node, error) {
	switch tok.TSubType {
	case efp.TokenSubTypeNumber:
		v, err := strconv.ParseFloat(tok.TValue, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", tok.TValue)
		}
		return &NumberNode{Value: v}, nil
	case efp.TokenSubTypeLogical:
		if strings.EqualFold(tok.TValue, "TRUE") {
			return &NumberNode{Value: 1}, nil
		}
		return &NumberNode{Value: 0}, nil
	case efp.TokenSubTypeRange:
		return b.reference(tok.TValue)
	}
	return &StringNode{Value: tok.TValue}, nil
}

// reference turns an A1 reference or a range name into a leaf.
func (b *builder) reference(s string) (Node, error) {
	left, right, isRange, err := parser.ParseRange(s)
	if err != nil {
		if b.ctx.Names != nil {
			if r, ok := b.ctx.Names(s); ok {
				if r.IsRange {
					return &RangeNode{Left: r.Left, Right: r.Right}, nil
				}
				return &CellRefNode{Ref: r.Left}, nil
			}
		}
		return nil, fmt.Errorf("unknown reference %q", s)
	}

	if b.ctx.Grid != nil {
		left.Ref = b.ctx.Grid.Lookat(left.Ref.Row, left.Ref.Col)
		right.Ref = b.ctx.Grid.Lookat(right.Ref.Row, right.Ref.Col)
	}
	if isRange {
		return &RangeNode{Left: left, Right: right}, nil
	}
	return &CellRefNode{Ref: left}, nil
}
