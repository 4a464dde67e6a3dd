// Package main provides the pinclean CLI application.
// pinclean repairs pinyin codes in spreadsheet identifier columns.
package main

import (
	"github.com/rachluis/data-clean-pinyin/cmd"
)

func main() {
	cmd.Execute()
}
