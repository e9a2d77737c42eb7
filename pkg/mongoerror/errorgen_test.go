package mongoerror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStringReturnsDeclaredName(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{OK, "OK"},
		{CommandNotFound, "CommandNotFound"},
		{Unauthorized, "Unauthorized"},
		{DuplicateKey, "DuplicateKey"},
		{NotMasterOrSecondary, "NotMasterOrSecondary"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.String())
		})
	}
}

func TestStringPanicsOnUnknownCode(t *testing.T) {
	assert.PanicsWithValue(t, "unknown ErrorCode", func() {
		_ = ErrorCode(3).String()
	})
	assert.Panics(t, func() {
		_ = ErrorCode(-1).String()
	})
}

func TestConstantValues(t *testing.T) {
	assert.Equal(t, 59, int(CommandNotFound))
	assert.Equal(t, 11000, int(DuplicateKey))
	assert.Equal(t, 13388, int(StaleConfig))
}

func TestErrMessage(t *testing.T) {
	got := CommandNotFound.ErrMessage("no such command: 'frobnicate'")

	want := bson.D{
		{Key: "ok", Value: 0},
		{Key: "errmsg", Value: "no such command: 'frobnicate'"},
		{Key: "code", Value: 59},
		{Key: "codeName", Value: "CommandNotFound"},
	}
	assert.Equal(t, want, got)
}

func TestErrMessageMarshalsToBSON(t *testing.T) {
	raw, err := bson.Marshal(DocumentValidationFailure.ErrMessage("Document failed validation"))
	assert.NoError(t, err)

	var decoded bson.M
	assert.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, int32(0), decoded["ok"])
	assert.Equal(t, "Document failed validation", decoded["errmsg"])
	assert.Equal(t, int32(121), decoded["code"])
	assert.Equal(t, "DocumentValidationFailure", decoded["codeName"])
}

func TestErrMessageForCodeWithExtra(t *testing.T) {
	// StaleConfig carries an auxiliary payload in the definitions; the
	// reply shape is unaffected.
	got := StaleConfig.ErrMessage("stale config")
	assert.Len(t, got, 4)
	assert.Equal(t, "StaleConfig", got[3].Value)
}

func TestClassPredicates(t *testing.T) {
	tests := []struct {
		name string
		is   func(ErrorCode) bool
		in   []ErrorCode
		out  []ErrorCode
	}{
		{"NetworkError", IsNetworkError,
			[]ErrorCode{HostUnreachable, HostNotFound, NetworkTimeout, SocketException},
			[]ErrorCode{OK, Interrupted, ErrorCode(1234)}},
		{"Interruption", IsInterruption,
			[]ErrorCode{Interrupted, InterruptedAtShutdown, InterruptedDueToReplStateChange, ExceededTimeLimit, MaxTimeMSExpired, CursorKilled, LockTimeout},
			[]ErrorCode{NotMaster, ShutdownInProgress}},
		{"NotMasterError", IsNotMasterError,
			[]ErrorCode{NotMaster, NotMasterNoSlaveOk, NotMasterOrSecondary, InterruptedDueToReplStateChange, PrimarySteppedDown},
			[]ErrorCode{Interrupted, HostNotFound}},
		{"StaleShardVersionError", IsStaleShardVersionError,
			[]ErrorCode{StaleConfig, StaleShardVersion, StaleEpoch},
			[]ErrorCode{CannotImplicitlyCreateCollection}},
		{"NeedRetargettingError", IsNeedRetargettingError,
			[]ErrorCode{StaleConfig, StaleShardVersion, StaleEpoch, CannotImplicitlyCreateCollection},
			[]ErrorCode{NamespaceNotFound}},
		{"WriteConcernError", IsWriteConcernError,
			[]ErrorCode{WriteConcernFailed, WriteConcernLegacyOK, UnknownReplWriteConcern, CannotSatisfyWriteConcern},
			[]ErrorCode{WriteConflict}},
		{"ShutdownError", IsShutdownError,
			[]ErrorCode{ShutdownInProgress, InterruptedAtShutdown},
			[]ErrorCode{Interrupted}},
		{"ConnectionFatalMessageParseError", IsConnectionFatalMessageParseError,
			[]ErrorCode{IllegalOpMsgFlag, TooManyDocumentSequences},
			[]ErrorCode{FailedToParse}},
		{"ExceededTimeLimitError", IsExceededTimeLimitError,
			[]ErrorCode{ExceededTimeLimit, MaxTimeMSExpired, NetworkInterfaceExceededTimeLimit},
			[]ErrorCode{NetworkTimeout}},
		{"SnapshotError", IsSnapshotError,
			[]ErrorCode{SnapshotTooOld, SnapshotUnavailable, StaleChunkHistory},
			[]ErrorCode{StaleConfig}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range tt.in {
				assert.True(t, tt.is(c), "%s should be in %s", c, tt.name)
			}
			for _, c := range tt.out {
				assert.False(t, tt.is(c), "%d should not be in %s", int(c), tt.name)
			}
		})
	}
}

func TestPredicatesDoNotPanicOnUnknownCodes(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.False(t, IsNetworkError(ErrorCode(424242)))
		assert.False(t, IsSnapshotError(ErrorCode(-7)))
	})
}
