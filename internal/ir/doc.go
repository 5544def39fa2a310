// Package ir provides the canonical value representation used for action
// payloads and state digests.
//
// Every validated action input is held as an Object before it is decoded into
// a typed input, and every document state can be lowered into a Value for
// hashing. ir imports nothing internal so that every other package can depend
// on it.
//
// Key constraints:
//   - No float types anywhere. Money is carried as int64 minor units.
//   - Null is a real value (it clears nullable fields), unlike absence.
//   - Canonical bytes follow RFC 8785 with NFC-normalized strings.
package ir
