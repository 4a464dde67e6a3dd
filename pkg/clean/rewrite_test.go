package clean_test

import (
	"testing"

	"github.com/rachluis/data-clean-pinyin/pkg/clean"
	"github.com/rachluis/data-clean-pinyin/pkg/table"
	"github.com/rachluis/data-clean-pinyin/pkg/translit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRewriter() *clean.Rewriter {
	return &clean.Rewriter{
		Translit:   translit.New(),
		NameColumn: "clientname",
		CodeColumn: "patientcode",
		Delimiter:  "_",
	}
}

func newTable(rows ...[]table.Cell) *table.Table {
	tbl := table.New([]string{"clientname", "patientcode"})
	for _, r := range rows {
		tbl.AppendRow(r)
	}
	return tbl
}

func TestRewriteQualifyingRow(t *testing.T) {
	tbl := newTable(
		[]table.Cell{
			table.StringCell("张三"),
			table.StringCell("oldcode_001"),
		},
	)

	processed := newRewriter().Rewrite(tbl)

	assert.Equal(t, 1, processed)
	assert.Equal(t, "ZHANGSAN_001", tbl.Get(0, "patientcode").String())
	assert.Equal(t, "张三", tbl.Get(0, "clientname").String(),
		"name column stays untouched")
}

func TestRewriteSkips(t *testing.T) {
	tests := []struct {
		msg  string
		name table.Cell
		code table.Cell
	}{
		{
			msg:  "identifier without delimiter",
			name: table.StringCell("张三"),
			code: table.StringCell("onlyonesegment"),
		},
		{
			msg:  "missing name",
			name: table.MissingCell(),
			code: table.StringCell("x_1"),
		},
		{
			msg:  "missing identifier",
			name: table.StringCell("张三"),
			code: table.MissingCell(),
		},
		{
			msg:  "blank name",
			name: table.StringCell("  "),
			code: table.StringCell("x_1"),
		},
		{
			msg:  "blank identifier",
			name: table.StringCell("张三"),
			code: table.StringCell(""),
		},
	}

	for _, v := range tests {
		tbl := newTable([]table.Cell{v.name, v.code})
		before := tbl.Get(0, "patientcode")

		processed := newRewriter().Rewrite(tbl)

		assert.Equal(t, 0, processed, v.msg)
		assert.Equal(t, before, tbl.Get(0, "patientcode"),
			"%s: row must stay unmodified", v.msg)
	}
}

func TestRewriteNumericIdentifier(t *testing.T) {
	// Numeric cells are stringified before splitting, so an
	// identifier that happens to parse as a number and has no
	// delimiter is simply skipped.
	tbl := newTable(
		[]table.Cell{
			table.StringCell("张三"),
			table.NumberCell(1001),
		},
	)

	processed := newRewriter().Rewrite(tbl)

	assert.Equal(t, 0, processed)
	assert.Equal(t, "1001", tbl.Get(0, "patientcode").String())
}

func TestRewritePreservesSegments(t *testing.T) {
	tbl := newTable(
		[]table.Cell{
			table.StringCell("李四"),
			table.StringCell("stale_2025_07_a"),
		},
	)

	processed := newRewriter().Rewrite(tbl)

	require.Equal(t, 1, processed)
	assert.Equal(t, "LISI_2025_07_a", tbl.Get(0, "patientcode").String(),
		"all segments after the first stay verbatim")
}

func TestRewriteRowOrderAndCount(t *testing.T) {
	tbl := newTable(
		[]table.Cell{
			table.StringCell("张三"),
			table.StringCell("a_1"),
		},
		[]table.Cell{
			table.MissingCell(),
			table.StringCell("b_2"),
		},
		[]table.Cell{
			table.StringCell("李四"),
			table.StringCell("c_3"),
		},
	)

	processed := newRewriter().Rewrite(tbl)

	assert.Equal(t, 2, processed)
	require.Equal(t, 3, tbl.Len(), "row count never changes")
	assert.Equal(t, "ZHANGSAN_1", tbl.Get(0, "patientcode").String())
	assert.Equal(t, "b_2", tbl.Get(1, "patientcode").String())
	assert.Equal(t, "LISI_3", tbl.Get(2, "patientcode").String())
}

func TestRewriteOnRowHook(t *testing.T) {
	tbl := newTable(
		[]table.Cell{
			table.StringCell("张三"),
			table.StringCell("a_1"),
		},
		[]table.Cell{
			table.MissingCell(),
			table.MissingCell(),
		},
	)

	rw := newRewriter()
	var visited int
	rw.OnRow = func() { visited++ }

	rw.Rewrite(tbl)

	assert.Equal(t, 2, visited,
		"hook fires for every row, qualifying or not")
}

func TestRewriteDeterministic(t *testing.T) {
	build := func() *table.Table {
		return newTable(
			[]table.Cell{
				table.StringCell("王小明"),
				table.StringCell("x_9"),
			},
		)
	}

	t1 := build()
	t2 := build()
	newRewriter().Rewrite(t1)
	newRewriter().Rewrite(t2)

	assert.Equal(t,
		t1.Get(0, "patientcode").String(),
		t2.Get(0, "patientcode").String())
}
