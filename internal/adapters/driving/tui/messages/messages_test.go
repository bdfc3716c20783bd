package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewBoard, "board"},
		{ViewEditor, "editor"},
		{ViewRename, "rename"},
		{ViewHelp, "help"},
		{ViewType(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.view.String())
	}
}
