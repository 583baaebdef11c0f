package reporter

import (
	"fmt"
	"math/big"
	"reflect"

	cn "github.com/Rendinex/VTCRendinex/constant"
	"github.com/Rendinex/VTCRendinex/model"
	"github.com/Rendinex/VTCRendinex/pkg"
)

// DecodeReport checks the shape of a raw getLicenses() result and converts it
// into a LicenseReport. The first element's length is the row count; the
// other three columns must be at least that long.
func DecodeReport(values []any) (model.LicenseReport, error) {
	if len(values) < cn.MinLicenseReportOutputs {
		return model.LicenseReport{}, malformed(values)
	}

	ids, ok := toBigInts(values[0])
	if !ok {
		return model.LicenseReport{}, malformed(values)
	}

	rows := len(ids)

	goals, ok := toBigInts(values[1])
	if !ok || len(goals) < rows {
		return model.LicenseReport{}, malformed(values)
	}

	raised, ok := toBigInts(values[2])
	if !ok || len(raised) < rows {
		return model.LicenseReport{}, malformed(values)
	}

	completed, ok := toBools(values[3])
	if !ok || len(completed) < rows {
		return model.LicenseReport{}, malformed(values)
	}

	return model.LicenseReport{
		IDs:              ids,
		FundingGoals:     goals[:rows],
		FundsRaised:      raised[:rows],
		FundingCompleted: completed[:rows],
	}, nil
}

func malformed(values []any) error {
	return pkg.ValidateBusinessError(cn.ErrUnexpectedResultFormat, "LicenseReport", fmt.Sprintf("%v", values))
}

// toBigInts accepts the integer sequences abi.Unpack can produce: []*big.Int
// for wide types and native integer slices/arrays for uint8..uint64.
func toBigInts(v any) ([]*big.Int, bool) {
	if ints, ok := v.([]*big.Int); ok {
		return ints, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]*big.Int, rv.Len())

	for i := range out {
		elem := rv.Index(i)

		switch elem.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			out[i] = new(big.Int).SetUint64(elem.Uint())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			out[i] = big.NewInt(elem.Int())
		default:
			n, ok := elem.Interface().(*big.Int)
			if !ok || n == nil {
				return nil, false
			}

			out[i] = n
		}
	}

	return out, true
}

// toBools accepts bool slices/arrays and []any holding bool values.
func toBools(v any) ([]bool, bool) {
	if flags, ok := v.([]bool); ok {
		return flags, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]bool, rv.Len())

	for i := range out {
		flag, ok := rv.Index(i).Interface().(bool)
		if !ok {
			return nil, false
		}

		out[i] = flag
	}

	return out, true
}
