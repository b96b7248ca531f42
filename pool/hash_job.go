package pool

import "github.com/hasbyte1/go-password-utils/pwhash"

// HashJob submits a password for hashing under the named algorithm.  Read
// the outcome from Result, which should be buffered (capacity 1) so a
// worker never blocks on delivery.
type HashJob struct {
	Password  string
	Salt      string
	Algorithm string
	Result    chan HashResult
}

// HashResult carries the constructed entity or the construction error.
type HashResult struct {
	Hash *pwhash.Hash
	Err  error
}

func (j HashJob) execute() {
	h, err := pwhash.New(j.Password, j.Salt, j.Algorithm)
	j.Result <- HashResult{Hash: h, Err: err}
}
