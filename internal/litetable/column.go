package litetable

import "strings"

// Separator splits a column address into its family and qualifier.
const Separator = ":"

// ParseColumn splits a family:qualifier address at the first separator. An address without a
// separator is treated as a bare family with an empty qualifier.
func ParseColumn(address string) Column {
	family, qualifier, _ := strings.Cut(address, Separator)
	return Column{
		Family:    []byte(family),
		Qualifier: []byte(qualifier),
	}
}

// QualifiedColumn makes sure an address carries a family separator, appending one when missing.
func QualifiedColumn(address string) string {
	if !strings.Contains(address, Separator) {
		return address + Separator
	}
	return address
}
