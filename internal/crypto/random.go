package crypto

import (
	"crypto/rand"
	"io"
	"math/big"
)

// randIndex returns a uniform integer in [0, n) read from random.
func randIndex(random io.Reader, n int) (int, error) {
	v, err := rand.Int(random, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// randRune picks a random rune from alphabet.
func randRune(random io.Reader, alphabet []rune) (rune, error) {
	i, err := randIndex(random, len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

// secureShuffle performs a Fisher-Yates shuffle driven by random.
func secureShuffle(random io.Reader, data []rune) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := randIndex(random, i+1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
