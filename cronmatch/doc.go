// Package cronmatch decides whether a point in time satisfies a five-field
// cron expression.
//
// An expression has the form
//
//	<minute> <hour> <day-of-month> <month> <day-of-week>
//
// and each field is matched against the corresponding value of the time's
// calendar breakdown (see CalendarPoint). A field supports wildcards (*),
// lists (1,4,7), ranges (10-20), steps (*/5, 10-59/5) and English month and
// weekday names in every place a number is allowed (jan-jun/2, mon-fri).
//
// Unlike most cron implementations, a step matches the multiples of the
// modulus within the range rather than counting from the range start:
// 1-10/3 matches 3, 6 and 9. Day-of-month and day-of-week are combined with
// a logical AND, as are all the other fields.
//
// Matching is a pure function of its inputs. Nothing is cached or
// precompiled; every call parses the expression again.
package cronmatch
