package scheme

import (
	"context"
	"errors"
	"testing"

	"github.com/litetable/litetable-scheme/internal/litetable"
	"github.com/litetable/litetable-scheme/internal/tuple"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func userRow(cells map[string][]byte) *litetable.Row {
	row := &litetable.Row{
		Key:     "42",
		Columns: map[string]litetable.VersionedQualifier{},
	}
	for address, value := range cells {
		col := litetable.ParseColumn(address)
		family := string(col.Family)
		if _, ok := row.Columns[family]; !ok {
			row.Columns[family] = litetable.VersionedQualifier{}
		}
		row.Columns[family][string(col.Qualifier)] = []litetable.TimestampedValue{
			{Value: value, Timestamp: 1},
		}
	}
	return row
}

func TestScheme_Decode(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		valueFields tuple.Fields
		row         *litetable.Row
		expected    tuple.Tuple
		expectedErr error
	}{
		"plain fields hand over raw bytes": {
			valueFields: tuple.Names("name", "age"),
			row:         userRow(map[string][]byte{"info:name": []byte("Alice"), "info:age": []byte("30")}),
			expected:    tuple.Tuple{"42", []byte("Alice"), []byte("30")},
		},
		"absent plain cell keeps its slot": {
			valueFields: tuple.Names("name", "age"),
			row:         userRow(map[string][]byte{"info:name": []byte("Alice")}),
			expected:    tuple.Tuple{"42", []byte("Alice"), []byte(nil)},
		},
		"cells outside the declaration are ignored": {
			valueFields: tuple.Names("name"),
			row:         userRow(map[string][]byte{"info:name": []byte("Alice"), "info:email": []byte("a@b.c")}),
			expected:    tuple.Tuple{"42", []byte("Alice")},
		},
		"coercible field is canonicalized": {
			valueFields: tuple.Fields{{Name: "name", Type: tuple.String}, {Name: "age", Type: tuple.Int64}},
			row:         userRow(map[string][]byte{"info:name": []byte("Alice"), "info:age": []byte("30")}),
			expected:    tuple.Tuple{"42", "Alice", int64(30)},
		},
		"tolerant coercible type accepts an absent cell": {
			valueFields: tuple.Fields{{Name: "age", Type: tuple.Nullable(tuple.Int64)}},
			row:         userRow(nil),
			expected:    tuple.Tuple{"42", nil},
		},
		"string type canonicalizes an absent cell to empty text": {
			valueFields: tuple.Fields{{Name: "name", Type: tuple.String}},
			row:         userRow(nil),
			expected:    tuple.Tuple{"42", ""},
		},
		"rejecting coercible type fails on an absent cell": {
			valueFields: tuple.Fields{{Name: "age", Type: tuple.Int64}},
			row:         userRow(nil),
			expectedErr: tuple.ErrEmptyValue,
		},
		"malformed cell fails the record": {
			valueFields: tuple.Fields{{Name: "name", Type: tuple.String}, {Name: "age", Type: tuple.Int64}},
			row:         userRow(map[string][]byte{"info:name": []byte("Alice"), "info:age": []byte("thirty")}),
			expectedErr: ErrCoercion,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			s, err := NewSingle(tuple.Field{Name: "id"}, "info", tc.valueFields)
			req.NoError(err)

			got, err := s.Decode(tc.row.Key, litetable.NewResult(tc.row))
			if tc.expectedErr != nil {
				req.Nil(got)
				req.True(errors.Is(err, tc.expectedErr), "expected %v to wrap %v", err, tc.expectedErr)
				req.True(errors.Is(err, ErrCoercion))
				req.True(IsRecordError(err))
				return
			}

			req.NoError(err)
			req.Len(got, 1+len(s.Columns()))
			req.Equal(tc.expected, got)
		})
	}
}

func TestScheme_Decode_MultipleFamilies(t *testing.T) {
	req := require.New(t)

	s, err := New(&Config{
		KeyField:    tuple.Field{Name: "id"},
		Families:    []string{"info", "meta"},
		ValueFields: []tuple.Fields{tuple.Names("name"), {{Name: "visits", Type: tuple.Int64}}},
	})
	req.NoError(err)

	row := userRow(map[string][]byte{"info:name": []byte("Alice"), "meta:visits": []byte("7")})
	got, err := s.Decode("42", litetable.NewResult(row))
	req.NoError(err)
	req.Equal(tuple.Tuple{"42", []byte("Alice"), int64(7)}, got)
}

func TestScheme_Decode_FullyQualified(t *testing.T) {
	req := require.New(t)

	s, err := New(&Config{
		KeyField:       tuple.Field{Name: "id"},
		Families:       []string{"default"},
		ValueFields:    []tuple.Fields{tuple.Names("meta:owner")},
		FullyQualified: true,
	})
	req.NoError(err)

	row := userRow(map[string][]byte{"meta:owner": []byte("bob")})
	got, err := s.Decode("42", litetable.NewResult(row))
	req.NoError(err)
	req.Equal(tuple.Tuple{"42", []byte("bob")}, got)
}

func TestScheme_Decode_UsesCachedColumns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, err := NewSingle(tuple.Field{Name: "id"}, "info", tuple.Names("name", "age"))
	require.NoError(t, err)
	cells := s.Cells()

	row := NewMockRowValue(ctrl)
	gomock.InOrder(
		row.EXPECT().Value(cells[0].Family, cells[0].Qualifier).Return([]byte("Alice")),
		row.EXPECT().Value(cells[1].Family, cells[1].Qualifier).Return(nil),
	)

	got, err := s.Decode("42", row)
	require.NoError(t, err)
	require.Equal(t, tuple.Tuple{"42", []byte("Alice"), []byte(nil)}, got)
}

func TestScheme_Decode_NilRow(t *testing.T) {
	s, err := NewSingle(tuple.Field{Name: "id"}, "info", tuple.Names("name"))
	require.NoError(t, err)

	got, err := s.Decode("42", nil)
	require.NoError(t, err)
	require.Equal(t, tuple.Tuple{"42", []byte(nil)}, got)
}

func TestScheme_Source(t *testing.T) {
	s, err := NewSingle(tuple.Field{Name: "id"}, "info", tuple.Names("name"))
	require.NoError(t, err)

	t.Run("row produced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		src := NewMockRowSource(ctrl)
		src.EXPECT().
			Next(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key *string, value *litetable.Result) (bool, error) {
				*key = "42"
				*value = litetable.NewResult(userRow(map[string][]byte{"info:name": []byte("Alice")}))
				return true, nil
			})

		got, ok, err := s.Source(context.Background(), src)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, tuple.Tuple{"42", []byte("Alice")}, got)
	})

	t.Run("end of input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		src := NewMockRowSource(ctrl)
		src.EXPECT().Next(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		got, ok, err := s.Source(context.Background(), src)
		require.NoError(t, err)
		require.False(t, ok)
		require.Nil(t, got)
	})

	t.Run("read failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cause := errors.New("connection reset")
		src := NewMockRowSource(ctrl)
		src.EXPECT().Next(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, cause)

		got, ok, err := s.Source(context.Background(), src)
		require.Error(t, err)
		require.False(t, ok)
		require.Nil(t, got)
		require.True(t, errors.Is(err, ErrRead))
		require.True(t, errors.Is(err, cause))
		require.False(t, IsRecordError(err))
	})
}
