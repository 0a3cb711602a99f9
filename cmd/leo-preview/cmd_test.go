package main

import (
	"bytes"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaroher/protoc-gen-go-leo/generator/field"
)

const personYAML = "../../internal/preview/testdata/person.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	out, err := run(t, "render", personYAML, "--phase", "members,size")
	require.NoError(t, err)
	assert.Contains(t, out, "// field tags = 6 (bit 1)")
	assert.Contains(t, out, "// -- members")
	assert.Contains(t, out, "// -- size")
	assert.NotContains(t, out, "// -- parse")
}

func TestRender_UnknownPhase(t *testing.T) {
	_, err := run(t, "render", personYAML, "--phase", "bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, field.ErrUnknownPhase))
}

func TestMessage(t *testing.T) {
	out, err := run(t, "message", personYAML, "--parameter", "suffix=View")
	require.NoError(t, err)
	assert.Contains(t, out, "// Code generated by protoc-gen-go-leo. DO NOT EDIT.")
	assert.Contains(t, out, "type PersonView struct {")
}

func TestMessage_MissingFile(t *testing.T) {
	_, err := run(t, "message", "testdata/missing.yaml")
	assert.Error(t, err)
}

func TestArgs(t *testing.T) {
	_, err := run(t, "render")
	assert.Error(t, err)
}
