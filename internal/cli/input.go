package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readInput resolves an --input value: inline JSON, @path to read a file,
// or - to read stdin. An empty value means {}.
func readInput(value string, stdin io.Reader) ([]byte, error) {
	switch {
	case value == "":
		return []byte("{}"), nil
	case value == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	case strings.HasPrefix(value, "@"):
		data, err := os.ReadFile(value[1:])
		if err != nil {
			return nil, fmt.Errorf("read input file: %w", err)
		}
		return data, nil
	}
	return []byte(value), nil
}
