package metrics

import (
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCounters(t *testing.T) {
	req := require.New(t)

	decoded := testutil.ToFloat64(Records(OpDecode))
	decodedCells := testutil.ToFloat64(Cells(OpDecode))
	encoded := testutil.ToFloat64(Records(OpEncode))
	encodedCells := testutil.ToFloat64(Cells(OpEncode))
	failed := testutil.ToFloat64(Failures(OpEncode, "coercion"))

	RecordDecoded(3)
	RecordEncoded(2)
	RecordEncoded(2)
	RecordFailure(OpEncode, "coercion")

	req.Equal(decoded+1, testutil.ToFloat64(Records(OpDecode)))
	req.Equal(decodedCells+3, testutil.ToFloat64(Cells(OpDecode)))
	req.Equal(encoded+2, testutil.ToFloat64(Records(OpEncode)))
	req.Equal(encodedCells+4, testutil.ToFloat64(Cells(OpEncode)))
	req.Equal(failed+1, testutil.ToFloat64(Failures(OpEncode, "coercion")))
}
