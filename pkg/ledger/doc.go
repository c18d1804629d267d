// Package ledger persists Secret Santa results and reads them back for verification.
//
// The on-disk format is one pairing per line, the giver's name and the
// receiver's name separated by a colon:
//
//	Alice: Bob
//	Bob: Carol
//	Carol: Alice
//
// A Ledger binds that format to a Store under a fixed object key. Two stores
// are provided: LocalStore for the filesystem and S3Store for Amazon S3 and
// S3-compatible services.
//
// # Usage
//
//	store, err := ledger.NewLocalStore(".")
//	if err != nil {
//	    return err
//	}
//	l := ledger.New(store, ledger.DefaultKey)
//	if err := l.Save(ctx, assignment.Names()); err != nil {
//	    return err
//	}
//
//	pairs, err := l.Load(ctx)
//
// # Error Handling
//
//   - ErrMalformedLine: a non-blank line has no colon separator
//   - ErrNotFound: the object does not exist
//   - ErrInvalidPath: the key escapes the store root
//   - ErrInvalidConfig: store configuration is incomplete
//
// S3 failures are classified into ErrAccessDenied, ErrBucketNotFound,
// ErrServiceUnavailable and friends so callers can use errors.Is.
package ledger
