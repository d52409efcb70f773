package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedStruct struct {
	code ErrorCode
}

func (c *codedStruct) Error() string   { return "coded struct" }
func (c *codedStruct) Code() ErrorCode { return c.code }

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "interface not found")

	require.NotNil(t, err)
	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, "interface not found", err.Message())
	require.Equal(t, "[NOT_FOUND] interface not found", err.Error())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidInput, "member %q declared %d times", "Area", 2)

	require.Equal(t, CodeInvalidInput, err.Code())
	require.Equal(t, `member "Area" declared 2 times`, err.Message())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")

	tests := []struct {
		name    string
		err     error
		wantNil bool
		wantMsg string
	}{
		{"nil error", nil, true, ""},
		{"standard error", cause, false, "[IO_ERROR] write failed: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, CodeIO, "write failed")
			if tt.wantNil {
				require.Nil(t, got)
				return
			}
			require.Equal(t, tt.wantMsg, got.Error())
			require.True(t, Is(got, cause))
		})
	}
}

func TestWrapf(t *testing.T) {
	require.Nil(t, Wrapf(nil, CodeIO, "x %d", 1))

	err := Wrapf(stderrors.New("boom"), CodeIO, "copy %s", "a.txt")
	require.Equal(t, "copy a.txt", err.Message())
}

func TestWrapWithContext(t *testing.T) {
	ctx := map[string]any{"src": "a", "dst": "b"}
	err := WrapWithContext(stderrors.New("boom"), CodeIO, "copy failed", ctx)

	ctx["src"] = "mutated"
	require.Equal(t, "a", err.Context()["src"])
	require.Equal(t, "b", err.Context()["dst"])
}

func TestWithContext(t *testing.T) {
	err := New(CodeIO, "write failed")
	err = WithContext(err, "path", "out.txt")
	err = WithContext(err, "size", 10)

	require.Equal(t, CodeIO, err.Code())
	require.Equal(t, map[string]any{"path": "out.txt", "size": 10}, err.Context())
}

func TestWithContext_ConvertsForeignErrors(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		err := WithContext(stderrors.New("plain"), "k", "v")
		require.Equal(t, CodeUnknown, err.Code())
		require.Equal(t, "plain", err.Message())
	})

	t.Run("coder keeps code", func(t *testing.T) {
		err := WithContext(&codedStruct{code: CodeAdaptation}, "k", "v")
		require.Equal(t, CodeAdaptation, err.Code())
	})

	t.Run("nil", func(t *testing.T) {
		require.Nil(t, WithContext(nil, "k", "v"))
	})
}

func TestWithContextMap_Overrides(t *testing.T) {
	err := WithContextMap(New(CodeIO, "x"), map[string]any{"a": 1, "b": 2})
	err = WithContextMap(err, map[string]any{"b": 3})

	require.Equal(t, map[string]any{"a": 1, "b": 3}, err.Context())
}

func TestContext_IsCopy(t *testing.T) {
	err := WithContext(New(CodeIO, "x"), "k", "v")
	ctx := err.Context()
	ctx["k"] = "changed"

	require.Equal(t, "v", err.Context()["k"])
}

func TestWithContext_KeepsSentinelMatch(t *testing.T) {
	sentinel := New(CodeNotFound, "record not found")
	other := New(CodeNotFound, "record not found")

	err := WithContext(sentinel, "id", 42)
	require.True(t, stderrors.Is(err, sentinel))
	require.False(t, stderrors.Is(err, other), "distinct sentinels stay distinct")
	require.Equal(t, "[NOT_FOUND] record not found", err.Error())
	require.Nil(t, err.Unwrap())

	t.Run("repeated context", func(t *testing.T) {
		err := WithContext(WithContext(sentinel, "a", 1), "b", 2)
		require.True(t, stderrors.Is(err, sentinel))
		require.Equal(t, map[string]any{"a": 1, "b": 2}, err.Context())
	})

	t.Run("wrapped sentinel", func(t *testing.T) {
		err := Wrap(WithContext(sentinel, "id", 1), CodeIO, "lookup failed")
		require.True(t, stderrors.Is(err, sentinel))
	})

	t.Run("cause still reachable", func(t *testing.T) {
		cause := stderrors.New("disk")
		err := WithContext(Wrap(cause, CodeIO, "read failed"), "path", "x")
		require.True(t, stderrors.Is(err, cause))
	})
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, CodeUnknown},
		{"plain", stderrors.New("x"), CodeUnknown},
		{"coded", New(CodeNotFound, "x"), CodeNotFound},
		{"wrapped by fmt", fmt.Errorf("ctx: %w", New(CodeIO, "x")), CodeIO},
		{"foreign coder", fmt.Errorf("ctx: %w", &codedStruct{code: CodeBadImplementation}), CodeBadImplementation},
		{"outermost wins", Wrap(New(CodeIO, "inner"), CodeInternal, "outer"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestHasCode(t *testing.T) {
	err := Wrap(New(CodeIO, "inner"), CodeInternal, "outer")
	assert.True(t, HasCode(err, CodeIO))
	assert.True(t, HasCode(err, CodeInternal))
	assert.False(t, HasCode(err, CodeNotFound))

	joined := Join(stderrors.New("plain"), &codedStruct{code: CodeAdaptation})
	assert.True(t, HasCode(joined, CodeAdaptation))
	assert.False(t, HasCode(nil, CodeUnknown))
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("outer: %w", &codedStruct{code: CodeInterface})

	var cs *codedStruct
	require.True(t, As(err, &cs))
	require.Equal(t, CodeInterface, cs.code)
	require.Equal(t, err.(interface{ Unwrap() error }).Unwrap(), Unwrap(err))
}

func TestToJSON(t *testing.T) {
	require.Nil(t, ToJSON(nil))

	resp := ToJSON(WithContext(New(CodeNotFound, "missing"), "name", "IShape"))
	require.Equal(t, "NOT_FOUND", resp.Code)
	require.Equal(t, "missing", resp.Message)
	require.Equal(t, "IShape", resp.Context["name"])

	resp = ToJSON(stderrors.New("plain"))
	require.Equal(t, "UNKNOWN", resp.Code)
	require.Equal(t, "plain", resp.Message)
	require.Nil(t, resp.Context)
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(stderrors.New("secret cause"), CodeIO, "write failed")

	data, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	require.JSONEq(t, `{"code":"IO_ERROR","message":"write failed"}`, string(data))
}
