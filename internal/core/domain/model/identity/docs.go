// Package identity models who is calling: the closed Role enum with its
// boundary normalization, and the Session value that every operation
// receives explicitly.
package identity
