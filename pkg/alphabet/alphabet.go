// Package alphabet defines the fixed Latin letter set that cell values
// and word characters are drawn from.
package alphabet

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Count is the number of letters in the alphabet.
const Count = len(letters)

// LetterAt returns the letter at the given index. It panics if index is
// out of range, mirroring direct array indexing.
func LetterAt(index int) byte {
	return letters[index]
}

// IndexOf returns the index of letter in the alphabet and true, or
// (0, false) if letter does not belong to the alphabet. It checks
// membership directly rather than assuming any ordering of the
// underlying storage.
func IndexOf(letter byte) (int, bool) {
	for i := 0; i < len(letters); i++ {
		if letters[i] == letter {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether letter is part of the alphabet.
func Contains(letter byte) bool {
	_, ok := IndexOf(letter)
	return ok
}
