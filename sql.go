package money

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// MoneyOID is the object identifier of the PostgreSQL money type.
const MoneyOID = 790

// AppendBinary implements the [encoding.BinaryAppender] interface.
// It appends the wire representation of the value, an 8-byte big-endian
// signed integer holding the cent count, to data.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (m Money) AppendBinary(data []byte) ([]byte, error) {
	return binary.BigEndian.AppendUint64(data, uint64(m.cents)), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// MarshalBinary always returns exactly 8 bytes.
// See also method [Money.AppendBinary].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (m Money) MarshalBinary() ([]byte, error) {
	return m.AppendBinary(nil)
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// The input must be exactly 8 bytes, a big-endian signed integer
// holding the cent count.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (m *Money) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("%w: invalid data length %v", ErrInvalidFormat, len(data))
	}
	m.cents = int64(binary.BigEndian.Uint64(data))
	return nil
}

// MoneyCodec is a [pgtype.Codec] for the PostgreSQL money type.
// Register it with [Register] to read and write [Money] values through
// a pgx connection.
type MoneyCodec struct{}

// Register registers the money type with m, so that pgx encodes and
// decodes money columns as [Money] values:
//
//	conn, _ := pgx.Connect(ctx, connString)
//	money.Register(conn.TypeMap())
func Register(m *pgtype.Map) {
	m.RegisterType(&pgtype.Type{Name: "money", OID: MoneyOID, Codec: MoneyCodec{}})
}

// FormatSupported implements the [pgtype.Codec] interface.
func (MoneyCodec) FormatSupported(format int16) bool {
	return format == pgtype.TextFormatCode || format == pgtype.BinaryFormatCode
}

// PreferredFormat implements the [pgtype.Codec] interface.
func (MoneyCodec) PreferredFormat() int16 {
	return pgtype.BinaryFormatCode
}

// PlanEncode implements the [pgtype.Codec] interface.
func (MoneyCodec) PlanEncode(m *pgtype.Map, oid uint32, format int16, value any) pgtype.EncodePlan {
	if _, ok := value.(Money); !ok {
		return nil
	}
	switch format {
	case pgtype.BinaryFormatCode:
		return encodePlanMoneyBinary{}
	case pgtype.TextFormatCode:
		return encodePlanMoneyText{}
	}
	return nil
}

type encodePlanMoneyBinary struct{}

func (encodePlanMoneyBinary) Encode(value any, buf []byte) ([]byte, error) {
	return value.(Money).AppendBinary(buf)
}

type encodePlanMoneyText struct{}

func (encodePlanMoneyText) Encode(value any, buf []byte) ([]byte, error) {
	return append(buf, value.(Money).String()...), nil
}

// PlanScan implements the [pgtype.Codec] interface.
func (MoneyCodec) PlanScan(m *pgtype.Map, oid uint32, format int16, target any) pgtype.ScanPlan {
	if _, ok := target.(*Money); !ok {
		return nil
	}
	switch format {
	case pgtype.BinaryFormatCode:
		return scanPlanMoneyBinary{}
	case pgtype.TextFormatCode:
		return scanPlanMoneyText{}
	}
	return nil
}

type scanPlanMoneyBinary struct{}

func (scanPlanMoneyBinary) Scan(src []byte, target any) error {
	if src == nil {
		return fmt.Errorf("cannot scan NULL into %T", target)
	}
	return target.(*Money).UnmarshalBinary(src)
}

type scanPlanMoneyText struct{}

func (scanPlanMoneyText) Scan(src []byte, target any) error {
	if src == nil {
		return fmt.Errorf("cannot scan NULL into %T", target)
	}
	m, err := Parse(string(src))
	if err != nil {
		return err
	}
	*(target.(*Money)) = m
	return nil
}

// DecodeDatabaseSQLValue implements the [pgtype.Codec] interface.
func (c MoneyCodec) DecodeDatabaseSQLValue(m *pgtype.Map, oid uint32, format int16, src []byte) (driver.Value, error) {
	if src == nil {
		return nil, nil
	}
	v, err := c.DecodeValue(m, oid, format, src)
	if err != nil {
		return nil, err
	}
	return v.(Money).Int64(), nil
}

// DecodeValue implements the [pgtype.Codec] interface.
func (MoneyCodec) DecodeValue(m *pgtype.Map, oid uint32, format int16, src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}
	var target Money
	plan := MoneyCodec{}.PlanScan(m, oid, format, &target)
	if plan == nil {
		return nil, fmt.Errorf("unknown format code %v", format)
	}
	if err := plan.Scan(src, &target); err != nil {
		return nil, err
	}
	return target, nil
}
