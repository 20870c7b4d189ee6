package transactions

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewReference builds the human-facing transaction identifier,
// TXN-<unix millis>-<9 random base36 chars>.
func NewReference(now time.Time) string {
	return fmt.Sprintf("TXN-%d-%s", now.UnixMilli(), randomSuffix(9))
}

func randomSuffix(length int) string {
	var b strings.Builder
	max := big.NewInt(int64(len(referenceAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			n = big.NewInt(int64(i % len(referenceAlphabet)))
		}
		b.WriteByte(referenceAlphabet[n.Int64()])
	}
	return b.String()
}
