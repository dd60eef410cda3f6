package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOptionalInt converte um parâmetro de query. ok é false quando o valor está vazio.
func ParseOptionalInt(name, value string) (n int, ok bool, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false, nil
	}

	n, err = strconv.Atoi(value)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s: %q is not an integer", name, value)
	}

	return n, true, nil
}

// SplitList separa valores por vírgula, descartando itens vazios
func SplitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
