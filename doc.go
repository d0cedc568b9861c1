/*
Package money implements the PostgreSQL money type: a monetary value
stored as a signed 64-bit count of cents.

# Features

  - Immutable values, comparable with == and safe for concurrent use
  - Arithmetic with explicit overflow detection, never silent wraparound
  - Parsing of the en_US.UTF-8 monetary format, including currency
    symbols, grouping separators, and parenthesized negatives
  - The PostgreSQL binary wire format, pluggable into pgx via a
    [pgtype.Codec]
  - JSON and database/sql integration

# Representation

A [Money] wraps a single int64 holding hundredths of a currency unit,
exactly the column representation PostgreSQL uses. No fraction smaller
than a cent is ever retained: all rounding happens while parsing or
converting, before a value is constructed. The representable range runs
from [Min], -$92233720368547758.08, through [Max], $92233720368547758.07.

# Operations

Addition, subtraction, and the scalar multiplication and division
functions [Mul] and [Div] detect overflow. The method forms panic on
overflow, matching the trapping arithmetic of the database; the
Checked* forms return errors for callers that must not abort.
Integer division truncates toward zero while floating-point division
rounds to the nearest cent, mirroring the distinct conventions of
integer and floating-point hardware division.

# Errors

Parsing and conversion report failures as wrapped sentinel errors:
[ErrInvalidFormat], [ErrMalformedNumber], [ErrOutOfRange],
[ErrOverflow], and [ErrDivideByZero]. Match them with [errors.Is].

[pgtype.Codec]: https://pkg.go.dev/github.com/jackc/pgx/v5/pgtype#Codec
*/
package money
