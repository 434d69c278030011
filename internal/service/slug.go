package service

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Попытки подобрать свободный slug
const (
	slugSequentialAttempts = 20
	slugMaxAttempts        = 25
)

// кириллица и буквы, которые не раскладываются NFD
var translit = map[rune]string{
	'đ': "dj", 'Đ': "dj",
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'ђ': "dj", 'е': "e", 'ж': "z",
	'з': "z", 'и': "i", 'ј': "j", 'к': "k", 'л': "l", 'љ': "lj", 'м': "m", 'н': "n",
	'њ': "nj", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'ћ': "c", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "c", 'ч': "c", 'џ': "dz", 'ш': "s",
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify переводит строку в URL-безопасный вид: "Čačak 2: Ćevapi" → "cacak-2-cevapi".
func Slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if t, ok := translit[r]; ok {
			b.WriteString(t)
			continue
		}
		b.WriteRune(r)
	}
	plain, _, err := transform.String(stripMarks, b.String())
	if err != nil {
		plain = b.String()
	}

	var out strings.Builder
	dash := false
	for _, r := range plain {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			out.WriteRune(r)
			dash = false
			continue
		}
		if !dash && out.Len() > 0 {
			out.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(out.String(), "-")
}

// Slug, совпадающие со статическими маршрутами /api/resources/...
var reservedSlugs = map[string]struct{}{
	"mine": {},
	"id":   {},
}

func reservedSlug(slug string) bool {
	_, ok := reservedSlugs[slug]
	return ok
}

// slugCandidate возвращает n-й кандидат: base, base-2, base-3, …, затем случайный суффикс.
func slugCandidate(base string, n int) string {
	switch {
	case n == 0:
		return base
	case n < slugSequentialAttempts:
		return base + "-" + strconv.Itoa(n+1)
	default:
		return base + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}
}
