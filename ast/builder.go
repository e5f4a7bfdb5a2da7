package ast

import (
	"fmt"

	"github.com/simplebuffers/simplebuffers-go/token"
)

// Builder parses schema source into a syntax tree. It holds exactly one
// token of lookahead and abandons the parse on the first error; there is no
// recovery or resynchronization.
type Builder struct {
	file string
	tz   *token.Tokenizer
	cur  *token.Token
}

// NewBuilder constructs a Builder over source, pulling the first token. It
// fails if the tokenizer cannot produce one.
func NewBuilder(source, file string) (*Builder, error) {
	tz := token.New(source, file)
	cur, err := tz.Next()
	if err != nil {
		return nil, err
	}
	return &Builder{file: file, tz: tz, cur: cur}, nil
}

// Parse consumes the remaining token stream and returns the root File node.
func (b *Builder) Parse() (*Node, error) {
	return b.parseFile()
}

func (b *Builder) advance() error {
	tok, err := b.tz.Next()
	if err != nil {
		return err
	}
	b.cur = tok
	return nil
}

// expect consumes the current token if it has the wanted kind and fails
// otherwise.
func (b *Builder) expect(kind token.Kind) (*token.Token, error) {
	tok := b.cur
	if tok == nil {
		return nil, &EOFError{File: b.file}
	}
	if tok.Kind != kind {
		return nil, &UnexpectedTokenError{
			Tok:  *tok,
			Hint: fmt.Sprintf("expected %q", kind.String()),
		}
	}
	if err := b.advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

func (b *Builder) expectIdent() (string, *token.Token, error) {
	tok := b.cur
	if tok == nil {
		return "", nil, &EOFError{File: b.file}
	}
	if tok.Kind != token.Ident {
		return "", nil, &UnexpectedTokenError{Tok: *tok, Hint: "expected an identifier"}
	}
	if err := b.advance(); err != nil {
		return "", nil, err
	}
	return tok.Text, tok, nil
}

// parseFile parses: file := (sequence | enum)* EOF
func (b *Builder) parseFile() (*Node, error) {
	file := &Node{Kind: FileNode}
	for b.cur != nil {
		var (
			decl *Node
			err  error
		)
		switch b.cur.Kind {
		case token.KwSequence:
			decl, err = b.parseSequence()
		case token.KwEnum:
			decl, err = b.parseEnum()
		default:
			err = &UnexpectedTokenError{
				Tok:  *b.cur,
				Hint: `expected a "sequence" or "enum"`,
			}
		}
		if err != nil {
			return nil, err
		}
		file.Children = append(file.Children, decl)
	}
	return file, nil
}

// parseSequence parses: sequence := "sequence" IDENT "{" (field ";")* "}"
func (b *Builder) parseSequence() (*Node, error) {
	tag, err := b.expect(token.KwSequence)
	if err != nil {
		return nil, err
	}
	name, _, err := b.expectIdent()
	if err != nil {
		return nil, err
	}
	fields, err := b.parseFieldBlock()
	if err != nil {
		return nil, err
	}
	return &Node{Kind: SequenceNode, Name: name, Children: fields, Tok: tag}, nil
}

// parseFieldBlock parses: "{" (field ";")* "}"
// It is shared by the sequence and oneof productions.
func (b *Builder) parseFieldBlock() ([]*Node, error) {
	if _, err := b.expect(token.LBrace); err != nil {
		return nil, err
	}
	var fields []*Node
	for {
		if b.cur == nil {
			return nil, &EOFError{File: b.file}
		}
		switch b.cur.Kind {
		case token.Ident:
			field, err := b.parseField()
			if err != nil {
				return nil, err
			}
			if _, err := b.expect(token.Semicolon); err != nil {
				return nil, err
			}
			fields = append(fields, field)
		case token.RBrace:
			if _, err := b.expect(token.RBrace); err != nil {
				return nil, err
			}
			return fields, nil
		default:
			return nil, &UnexpectedTokenError{
				Tok:  *b.cur,
				Hint: `expected an identifier or "}"`,
			}
		}
	}
}

// parseField parses: field := IDENT ":" type
func (b *Builder) parseField() (*Node, error) {
	name, tag, err := b.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(token.Colon); err != nil {
		return nil, err
	}
	ty, err := b.parseType()
	if err != nil {
		return nil, err
	}
	return &Node{Kind: FieldNode, Name: name, Children: []*Node{ty}, Tok: tag}, nil
}

// parseEnum parses: enum := "enum" IDENT "{" (enum_entry ";")* "}"
func (b *Builder) parseEnum() (*Node, error) {
	tag, err := b.expect(token.KwEnum)
	if err != nil {
		return nil, err
	}
	name, _, err := b.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(token.LBrace); err != nil {
		return nil, err
	}
	var entries []*Node
	for {
		if b.cur == nil {
			return nil, &EOFError{File: b.file}
		}
		switch b.cur.Kind {
		case token.Ident:
			entry, err := b.parseEnumEntry()
			if err != nil {
				return nil, err
			}
			if _, err := b.expect(token.Semicolon); err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		case token.RBrace:
			if _, err := b.expect(token.RBrace); err != nil {
				return nil, err
			}
			return &Node{Kind: EnumNode, Name: name, Children: entries, Tok: tag}, nil
		default:
			return nil, &UnexpectedTokenError{
				Tok:  *b.cur,
				Hint: `expected an identifier or "}"`,
			}
		}
	}
}

// parseEnumEntry parses: enum_entry := IDENT "=" NUMBER
// The literal text is kept raw; the semantic phase validates it.
func (b *Builder) parseEnumEntry() (*Node, error) {
	name, tag, err := b.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(token.Equals); err != nil {
		return nil, err
	}
	value, err := b.expect(token.Number)
	if err != nil {
		return nil, err
	}
	return &Node{Kind: EnumEntryNode, Name: name, Value: value.Text, Tok: tag}, nil
}

// parseType parses: type := IDENT | array | oneof
func (b *Builder) parseType() (*Node, error) {
	if b.cur == nil {
		return nil, &EOFError{File: b.file}
	}
	switch b.cur.Kind {
	case token.Ident:
		name, tag, err := b.expectIdent()
		if err != nil {
			return nil, err
		}
		return &Node{Kind: TypeNode, Name: name, Tok: tag}, nil
	case token.LBracket:
		return b.parseArray()
	case token.KwOneOf:
		return b.parseOneOf()
	default:
		return nil, &UnexpectedTokenError{
			Tok:  *b.cur,
			Hint: `expected a type, "[", or "oneof"`,
		}
	}
}

// parseArray parses: array := "[" type "]"
func (b *Builder) parseArray() (*Node, error) {
	tag, err := b.expect(token.LBracket)
	if err != nil {
		return nil, err
	}
	elem, err := b.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(token.RBracket); err != nil {
		return nil, err
	}
	return &Node{Kind: ArrayNode, Children: []*Node{elem}, Tok: tag}, nil
}

// parseOneOf parses: oneof := "oneof" "{" (field ";")* "}"
func (b *Builder) parseOneOf() (*Node, error) {
	tag, err := b.expect(token.KwOneOf)
	if err != nil {
		return nil, err
	}
	fields, err := b.parseFieldBlock()
	if err != nil {
		return nil, err
	}
	return &Node{Kind: OneOfNode, Children: fields, Tok: tag}, nil
}
