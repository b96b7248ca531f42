package pool

import "github.com/hasbyte1/go-password-utils/pwhash"

// VerifyJob submits a candidate password for verification against a stored
// entity.  Read the outcome from Result, which should be buffered
// (capacity 1) so a worker never blocks on delivery.
//
// The entity is read, never mutated, but it must not be mutated by another
// goroutine while the job is in flight.
type VerifyJob struct {
	Hash     *pwhash.Hash
	Password string
	Result   chan VerifyResult
}

// VerifyResult carries the match outcome or an infrastructural error.  A
// wrong password is Match == false with a nil Err.
type VerifyResult struct {
	Match bool
	Err   error
}

func (j VerifyJob) execute() {
	match, err := j.Hash.Verify(j.Password)
	j.Result <- VerifyResult{Match: match, Err: err}
}
