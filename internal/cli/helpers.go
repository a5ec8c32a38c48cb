package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/thenoetrevino/eventreg/internal/models"
)

// ParseEventID parses a positional event ID argument
func ParseEventID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: event ID must be a positive number, got %q", models.ErrInvalidInput, arg)
	}
	return id, nil
}

// WriteCSVFile creates path and lets write fill it
func WriteCSVFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing %s: %v", path, err)
		}
	}()

	return write(f)
}
