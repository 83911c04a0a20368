package fileio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readCSV — CSV с заголовком в строке headerRow (1-based). Не-UTF-8 вход
// прогоняем через chardet и перекодируем. Строки с синтаксическими ошибками,
// неверным числом полей или битым UTF-8 пропускаются, а не роняют чтение.
func readCSV(r io.Reader, headerRow int) (*Table, error) {
	br := bufio.NewReader(r)

	var dec io.Reader = br
	if enc := detectEncoding(br); enc != nil {
		dec = transform.NewReader(br, enc.NewDecoder())
	}

	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1

	var (
		rows   [][]string
		broken int
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				broken++
				continue
			}
			return nil, err
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return &Table{Skipped: broken}, nil
	}
	h := pickHeader(rows, headerRow)
	t := rowsToMaps(rows, h, headerRow, true)
	t.Skipped += broken
	return t, nil
}

// detectEncoding — смотрим начало потока. Legacy-кодировку (cp1251, cp1252,
// latin-1) включаем только если окно не похоже на UTF-8: нет валидных
// многобайтных последовательностей или битых байт больше, чем валидных.
// Иначе читаем как UTF-8, а строки с битыми байтами отсеет rowsToMaps.
func detectEncoding(br *bufio.Reader) encoding.Encoding {
	peek, _ := br.Peek(4096)
	if len(peek) == 0 || looksLikeUTF8(trimPartialRune(peek)) {
		return nil
	}
	det, err := chardet.NewTextDetector().DetectBest(peek)
	if err != nil || det == nil {
		return nil
	}
	switch strings.ToLower(det.Charset) {
	case "windows-1251", "cp1251":
		return charmap.Windows1251
	case "windows-1252":
		return charmap.Windows1252
	case "iso-8859-1":
		return charmap.ISO8859_1
	}
	return nil
}

// looksLikeUTF8 считает валидные многобайтные руны и битые байты.
func looksLikeUTF8(b []byte) bool {
	multi, invalid := 0, 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		switch {
		case r == utf8.RuneError && size == 1:
			invalid++
		case size > 1:
			multi++
		}
		b = b[size:]
	}
	if invalid == 0 {
		return true
	}
	return multi > 0 && invalid <= multi
}

// trimPartialRune drops a multi-byte sequence cut off by the peek window.
func trimPartialRune(b []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		c := b[len(b)-i]
		if c < utf8.RuneSelf {
			return b
		}
		if utf8.RuneStart(c) {
			if !utf8.FullRune(b[len(b)-i:]) {
				return b[:len(b)-i]
			}
			return b
		}
	}
	return b
}
