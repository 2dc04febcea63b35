// Package scan searches an assembled image for a fixed pixel pattern and
// reports the image's roughness: the set pixels that belong to no pattern
// occurrence.
//
// A Mask is parsed once from ASCII rows; '#' marks a pixel that must be set,
// every other character is a don't-care. The default mask is SeaMonster.
//
// Scan tries the orientations of the whole image in order (by default all
// eight: four rotations, then four mirrored rotations) and stops at the first
// orientation with at least one occurrence. Occurrences are assumed not to
// overlap; Scan verifies it and fails with ErrOverlap otherwise.
//
// Errors:
//
//   - ErrEmptyMask: the mask has no required pixel.
//   - ErrPatternNotFound: no orientation contains the pattern.
//   - ErrOverlap: two occurrences share a pixel.
//   - ErrOptionViolation: an empty orientation list.
package scan
