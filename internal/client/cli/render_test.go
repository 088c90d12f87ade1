package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_AlignsWideRunes(t *testing.T) {
	tb := newTable("NAME", "ID")
	tb.add("홍길동", "1")
	tb.add("kim", "22")

	var out bytes.Buffer
	tb.render(&out)

	assert.Equal(t, "NAME    ID\n홍길동  1\nkim     22\n", out.String())
}

func TestTable_Empty(t *testing.T) {
	var out bytes.Buffer
	newTable("ID", "NAME").render(&out)
	assert.Equal(t, "ID  NAME\n(none)\n", out.String())
}

func TestFields(t *testing.T) {
	var out bytes.Buffer
	fields(&out, "ID", "3", "이름", "홍길동", "Region", " ")
	assert.Equal(t, "ID      3\n이름    홍길동\nRegion  -\n", out.String())
}
