// Package filesystem lists candidate files through a go-billy filesystem.
//
// Production code passes osfs rooted at "/" and absolute directory paths;
// tests pass memfs.
package filesystem
