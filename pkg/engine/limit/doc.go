// Package limit evaluates one- and two-sided limits numerically and
// classifies discontinuities.
//
// A side is approached along a fixed geometric sequence of offsets. It
// converges when successive samples agree within the limit tolerances, or
// when the trailing differences contract geometrically. It diverges only
// when |f| never decreases over the whole sequence, which separates a true
// pole from an oscillation that occasionally produces large values.
//
// Nothing here returns NaN: undefined samples are flagged and a missing
// limit is reported through Exists and Behavior.
package limit
