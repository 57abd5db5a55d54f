package xlsx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadSheet(t *testing.T) {
	headers := []string{"学号", "姓名"}
	buf, err := WriteSheet(headers, [][]string{
		{"20230001", "张三"},
		{"20230002", "李四"},
	})
	require.NoError(t, err)

	gotHeaders, rows, err := ReadSheet(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, headers, gotHeaders)
	require.Len(t, rows, 2)
	assert.Equal(t, "张三", rows[0]["姓名"])
	assert.Equal(t, "20230002", rows[1]["学号"])
}

func TestReadSheetSkipsEmptyRows(t *testing.T) {
	buf, err := WriteSheet([]string{"学号"}, [][]string{
		{"20230001"},
		{""},
		{"20230002"},
	})
	require.NoError(t, err)

	_, rows, err := ReadSheet(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestReadSheetRejectsGarbage(t *testing.T) {
	_, _, err := ReadSheet(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}
