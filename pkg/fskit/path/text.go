package path

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"

	pathhelpers "github.com/ImGajeed76/fskit/pkg/fskit/path/helpers"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// ReadText reads the content of the file decoded from the given IANA
// encoding name. An empty or unknown-but-registered name falls back to a
// pass-through decode.
func (p *Path) ReadText(encodingName string) (string, error) {
	enc, err := ianaindex.IANA.Encoding(encodingName)
	if err != nil {
		return "", &PathError{Op: "read-get-encoding", Path: p.path, Err: err}
	}
	if enc == nil {
		enc = encoding.Nop
	}

	file, err := os.Open(p.path)
	if err != nil {
		return "", &PathError{Op: "read-open", Path: p.path, Err: err}
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			log.Printf("error closing file: %v", err)
		}
	}(file)

	fileInfo, err := file.Stat()
	if err != nil {
		return "", &PathError{Op: "read-stat", Path: p.path, Err: err}
	}

	bufferSize := pathhelpers.GetOptimalBufferSize(fileInfo.Size())
	reader := bufio.NewReaderSize(file, bufferSize)

	content, err := io.ReadAll(reader)
	if err != nil {
		return "", &PathError{Op: "read-read-all", Path: p.path, Err: err}
	}

	decoded, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", &PathError{Op: "read-decode", Path: p.path, Err: err}
	}

	return string(decoded), nil
}

// WriteText writes content encoded with the given IANA encoding name. The
// encoded bytes are decoded back and compared to the input so content that
// cannot be represented in the encoding is rejected instead of silently
// mangled.
func (p *Path) WriteText(content string, encodingName string) error {
	enc, err := ianaindex.IANA.Encoding(encodingName)
	if err != nil {
		return &PathError{Op: "write-get-encoding", Path: p.path, Err: err}
	}
	if enc == nil {
		enc = encoding.Nop
	}

	encoded, err := enc.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return &PathError{Op: "write-encode", Path: p.path, Err: err}
	}

	decoded, err := enc.NewDecoder().Bytes(encoded)
	if err != nil {
		return &PathError{Op: "write-validate", Path: p.path,
			Err: errors.New("content cannot be represented in specified encoding: " + err.Error())}
	}
	if string(decoded) != content {
		return &PathError{Op: "write-validate", Path: p.path,
			Err: errors.New("content cannot be represented in specified encoding")}
	}

	file, err := os.Create(p.path)
	if err != nil {
		return &PathError{Op: "write-create", Path: p.path, Err: err}
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			log.Printf("error closing file: %v", err)
		}
	}(file)

	bufferSize := pathhelpers.GetOptimalBufferSize(int64(len(encoded)))
	writer := bufio.NewWriterSize(file, bufferSize)

	if _, err = writer.Write(encoded); err != nil {
		return &PathError{Op: "write-write", Path: p.path, Err: err}
	}

	if err = writer.Flush(); err != nil {
		return &PathError{Op: "write-flush", Path: p.path, Err: err}
	}

	return nil
}
