// Package fixedwidth serializes organization records into the 1440-character
// flat-file layout consumed by the downstream publishing pipeline.
package fixedwidth
