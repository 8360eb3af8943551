package sqlq

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitranim/refut"
	"github.com/valyala/bytebufferpool"
)

/*
Dialect defines the way values are written into SQL text.

NoDialect is the default. It renders:

	nil, Unset{}     NULL
	"O'Brien"        'O''Brien'
	true, false      1, 0
	42, 1.5          42, 1.5

PostgreSQL renders booleans as TRUE and FALSE and is NoDialect otherwise.

Quote doubling is the only escaping applied. Backslash escapes and
encoding tricks pass through untouched, so never build statements
from untrusted input.
*/
type Dialect interface {
	WriteValue(buf *bytebufferpool.ByteBuffer, value interface{})
}

type noDialect struct{}

type pgDialect struct {
	noDialect
}

var (
	defaultDialect Dialect = noDialect{}
	pgDefault      Dialect = pgDialect{}
)

// NoDialect returns the default dialect.
func NoDialect() Dialect {
	return defaultDialect
}

// PostgreSQL returns a dialect rendering booleans as TRUE/FALSE.
func PostgreSQL() Dialect {
	return pgDefault
}

func (d noDialect) WriteValue(buf *bytebufferpool.ByteBuffer, value interface{}) {
	writeValue(buf, value, writeBoolNum)
}

func (d pgDialect) WriteValue(buf *bytebufferpool.ByteBuffer, value interface{}) {
	writeValue(buf, value, writeBoolWord)
}

func writeBoolNum(buf *bytebufferpool.ByteBuffer, b bool) {
	if b {
		buf.WriteByte('1')
	} else {
		buf.WriteByte('0')
	}
}

func writeBoolWord(buf *bytebufferpool.ByteBuffer, b bool) {
	if b {
		buf.WriteString("TRUE")
	} else {
		buf.WriteString("FALSE")
	}
}

// writeValue writes value as an SQL literal.
func writeValue(buf *bytebufferpool.ByteBuffer, value interface{}, writeBool func(*bytebufferpool.ByteBuffer, bool)) {
	if isNullValue(value) {
		buf.Write(null)
		return
	}
	rval := reflect.ValueOf(value)
	switch rval.Kind() {
	case reflect.Ptr:
		writeValue(buf, rval.Elem().Interface(), writeBool)
	// Named string and bool types included
	case reflect.String:
		writeString(buf, rval.String())
	case reflect.Bool:
		writeBool(buf, rval.Bool())
	default:
		fmt.Fprint(buf, value)
	}
}

// writeString quotes s doubling any embedded single quotes.
func writeString(buf *bytebufferpool.ByteBuffer, s string) {
	buf.WriteByte('\'')
	for {
		i := strings.IndexByte(s, '\'')
		if i < 0 {
			break
		}
		buf.WriteString(s[:i+1])
		buf.WriteByte('\'')
		s = s[i+1:]
	}
	buf.WriteString(s)
	buf.WriteByte('\'')
}

func isNullValue(value interface{}) bool {
	if value == nil {
		return true
	}
	if _, ok := value.(Unset); ok {
		return true
	}
	return refut.IsNil(value)
}

var null = []byte("NULL")
