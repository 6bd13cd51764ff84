/*
Package numsys converts non-negative integers between positional numeral
systems.

Three conversions are provided:

	SwitchDecBase  decimal to bases 2..36 using the canonical 0-9A-Z symbols
	Seq2Dec        symbol sequence to decimal using a caller-supplied alphabet
	Dec2Seq        decimal to symbol sequence using a caller-supplied alphabet

An alphabet is an ordered list of distinct runes; the position of a rune is its
digit value and the length of the alphabet is the base. A one-rune alphabet
selects the unary system, where a value n is written as n copies of the rune.

ParseDecBase is the inverse of SwitchDecBase, and Alphabet holds a validated
alphabet for repeated use.

All functions are pure and safe for concurrent use.
*/
package numsys
