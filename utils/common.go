// Common package contains commonly used functions that benefit multiple tools
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// FastaHandler receives one record (or one chunk of a record) at a time.
type FastaHandler func(id string, seq string, opts map[string]interface{}) error

// StreamFastaWithOpts streams a FASTA file of any size to handler.
// Gzipped input is detected from its magic bytes. Sequence lines are joined
// and upper-cased; the header is everything after '>'.
//
// Recognized opts:
//
//	chunk_size    int  split each record into windows of this length
//	chunk_overlap int  overlap between consecutive windows (< chunk_size)
//
// Chunked calls receive a copy of opts with chunk_start and chunk_end set.
func StreamFastaWithOpts(file string, handler FastaHandler, opts map[string]interface{}) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader, err := maybeGunzip(f)
	if err != nil {
		return err
	}
	if gr, ok := reader.(*gzip.Reader); ok {
		defer gr.Close()
	}
	return StreamFasta(reader, handler, opts)
}

// maybeGunzip peeks at the first two bytes of f and wraps it in a gzip
// reader when they carry the gzip magic number.
func maybeGunzip(f *os.File) (io.Reader, error) {
	buf := make([]byte, 2)
	n, _ := io.ReadFull(f, buf)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind file: %w", err)
	}
	if n == 2 && buf[0] == 0x1F && buf[1] == 0x8B {
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return gr, nil
	}
	return f, nil
}

// StreamFasta is StreamFastaWithOpts for an already open reader.
func StreamFasta(r io.Reader, handler FastaHandler, opts map[string]interface{}) error {
	chunkSize, stepSize := 0, 0
	if val, ok := opts["chunk_size"].(int); ok {
		chunkSize = val
		stepSize = chunkSize
	}
	if val, ok := opts["chunk_overlap"].(int); ok && chunkSize > 0 {
		stepSize = chunkSize - val
		if stepSize <= 0 {
			return fmt.Errorf("chunk_overlap must be less than chunk_size")
		}
	}

	emit := func(id string, seq []byte) error {
		if chunkSize > 0 {
			return streamChunks(id, seq, chunkSize, stepSize, handler, opts)
		}
		if err := handler(id, string(seq), opts); err != nil {
			return fmt.Errorf("handler error (%s): %w", id, err)
		}
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var currentID string
	var buffer []byte
	seenHeader := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if seenHeader && len(buffer) > 0 {
				if err := emit(currentID, buffer); err != nil {
					return err
				}
			}
			seenHeader = true
			currentID = strings.TrimSpace(strings.TrimPrefix(line, ">"))
			buffer = buffer[:0]
			continue
		}
		if !seenHeader {
			return fmt.Errorf("sequence data before first header: %q", line)
		}
		buffer = append(buffer, strings.ToUpper(line)...)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	if seenHeader && len(buffer) > 0 {
		return emit(currentID, buffer)
	}
	return nil
}

func streamChunks(id string, seq []byte, chunkSize, stepSize int, handler FastaHandler, opts map[string]interface{}) error {
	for i := 0; i < len(seq); i += stepSize {
		end := i + chunkSize
		if end > len(seq) {
			end = len(seq)
		}

		// Copy opts and add chunk position info
		localOpts := make(map[string]interface{}, len(opts)+2)
		for k, v := range opts {
			localOpts[k] = v
		}
		localOpts["chunk_start"] = i
		localOpts["chunk_end"] = end

		if err := handler(id, string(seq[i:end]), localOpts); err != nil {
			return fmt.Errorf("handler error in chunk %d-%d of %s: %w", i, end, id, err)
		}
		if end == len(seq) {
			break
		}
	}
	return nil
}
