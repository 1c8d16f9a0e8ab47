// Copyright 2026 The Hermes Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import "testing"

func TestParseBinaryOperatorRoundTrip(t *testing.T) {
	cases := []string{"+", "-", "*", "/", "%", "**", "==", "===", "!=", "!==",
		"<", "<=", ">", ">=", "<<", ">>", ">>>", "|", "^", "&", "in", "instanceof"}

	for _, text := range cases {
		op, err := ParseBinaryOperator(text)
		if err != nil {
			t.Fatalf("ParseBinaryOperator(%q) returned error: %v", text, err)
		}
		if got := op.String(); got != text {
			t.Fatalf("ParseBinaryOperator(%q).String() = %q, want %q", text, got, text)
		}
	}
}

func TestParseBinaryOperatorInvalid(t *testing.T) {
	if _, err := ParseBinaryOperator("=>"); err == nil {
		t.Fatalf("ParseBinaryOperator(\"=>\") returned nil error, want InvalidStringProperty")
	}
}

func TestParseLogicalOperatorRoundTrip(t *testing.T) {
	for _, text := range []string{"&&", "||", "??"} {
		op, err := ParseLogicalOperator(text)
		if err != nil {
			t.Fatalf("ParseLogicalOperator(%q) returned error: %v", text, err)
		}
		if got := op.String(); got != text {
			t.Fatalf("ParseLogicalOperator(%q).String() = %q, want %q", text, got, text)
		}
	}
}

func TestParseUnaryOperatorRoundTrip(t *testing.T) {
	for _, text := range []string{"-", "+", "!", "~", "typeof", "void", "delete"} {
		op, err := ParseUnaryOperator(text)
		if err != nil {
			t.Fatalf("ParseUnaryOperator(%q) returned error: %v", text, err)
		}
		if got := op.String(); got != text {
			t.Fatalf("ParseUnaryOperator(%q).String() = %q, want %q", text, got, text)
		}
	}
}

func TestParseUpdateOperatorRoundTrip(t *testing.T) {
	for _, text := range []string{"++", "--"} {
		op, err := ParseUpdateOperator(text)
		if err != nil {
			t.Fatalf("ParseUpdateOperator(%q) returned error: %v", text, err)
		}
		if got := op.String(); got != text {
			t.Fatalf("ParseUpdateOperator(%q).String() = %q, want %q", text, got, text)
		}
	}
}

func TestParseAssignmentOperatorRoundTrip(t *testing.T) {
	cases := []string{"=", "+=", "-=", "*=", "/=", "%=", "<<=", ">>=", ">>>=",
		"|=", "^=", "&=", "**=", "&&=", "||=", "??="}
	for _, text := range cases {
		op, err := ParseAssignmentOperator(text)
		if err != nil {
			t.Fatalf("ParseAssignmentOperator(%q) returned error: %v", text, err)
		}
		if got := op.String(); got != text {
			t.Fatalf("ParseAssignmentOperator(%q).String() = %q, want %q", text, got, text)
		}
	}
}

func TestParseOperatorInvalidStringPropertyIsRecoverable(t *testing.T) {
	_, err := ParseAssignmentOperator("nonsense")
	if err == nil {
		t.Fatalf("expected an error for an unrecognized operator text")
	}
	// This must be a plain returned error, not something callers need to
	// recover from a panic to observe.
	var _ error = err
}

func TestParseVariableDeclarationKindRoundTrip(t *testing.T) {
	for _, text := range []string{"var", "let", "const"} {
		k, err := ParseVariableDeclarationKind(text)
		if err != nil {
			t.Fatalf("ParseVariableDeclarationKind(%q) returned error: %v", text, err)
		}
		if got := k.String(); got != text {
			t.Fatalf("ParseVariableDeclarationKind(%q).String() = %q, want %q", text, got, text)
		}
	}
}

func TestParseVariableDeclarationKindInvalid(t *testing.T) {
	if _, err := ParseVariableDeclarationKind("function"); err == nil {
		t.Fatalf("ParseVariableDeclarationKind(\"function\") returned nil error, want InvalidStringProperty")
	}
}

func TestParsePropertyKindRoundTrip(t *testing.T) {
	for _, text := range []string{"init", "get", "set"} {
		k, err := ParsePropertyKind(text)
		if err != nil {
			t.Fatalf("ParsePropertyKind(%q) returned error: %v", text, err)
		}
		if got := k.String(); got != text {
			t.Fatalf("ParsePropertyKind(%q).String() = %q, want %q", text, got, text)
		}
	}
}

func TestParseMethodDefinitionKindRoundTrip(t *testing.T) {
	for _, text := range []string{"method", "constructor", "get", "set"} {
		k, err := ParseMethodDefinitionKind(text)
		if err != nil {
			t.Fatalf("ParseMethodDefinitionKind(%q) returned error: %v", text, err)
		}
		if got := k.String(); got != text {
			t.Fatalf("ParseMethodDefinitionKind(%q).String() = %q, want %q", text, got, text)
		}
	}
}

func TestParseImportKindRoundTrip(t *testing.T) {
	for _, text := range []string{"value", "type", "typeof"} {
		k, err := ParseImportKind(text)
		if err != nil {
			t.Fatalf("ParseImportKind(%q) returned error: %v", text, err)
		}
		if got := k.String(); got != text {
			t.Fatalf("ParseImportKind(%q).String() = %q, want %q", text, got, text)
		}
	}
}

func TestParseExportKindRoundTrip(t *testing.T) {
	for _, text := range []string{"value", "type"} {
		k, err := ParseExportKind(text)
		if err != nil {
			t.Fatalf("ParseExportKind(%q) returned error: %v", text, err)
		}
		if got := k.String(); got != text {
			t.Fatalf("ParseExportKind(%q).String() = %q, want %q", text, got, text)
		}
	}
}

func TestParseExportKindInvalid(t *testing.T) {
	if _, err := ParseExportKind("namespace"); err == nil {
		t.Fatalf("ParseExportKind(\"namespace\") returned nil error, want InvalidStringProperty")
	}
}
