package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"time"
)

// Length bounds for daily scramble source words.
const (
	DailyMinLen = 6
	DailyMaxLen = 8
)

// ErrNoDailyCandidates is returned when the dictionary has no word that can
// serve as a daily source word.
var ErrNoDailyCandidates = errors.New("words: no daily candidates in dictionary")

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// dailyIndex maps HMAC(salt, date key) onto [0, n).
func dailyIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// DailyWord picks the same source word for every player on a given UTC day.
// Changing the salt or the dictionary changes the word.
func (d *Dictionary) DailyWord(t time.Time, salt string) (string, error) {
	cands := d.Candidates(DailyMinLen, DailyMaxLen)
	if len(cands) == 0 {
		return "", ErrNoDailyCandidates
	}
	return cands[dailyIndex(t, salt, len(cands))], nil
}
