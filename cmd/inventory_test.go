package cmd

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srm221B/cmms/internal/stubapi"
)

func runInventoryCommand(t *testing.T, args ...string) string {
	t.Helper()

	stub := stubapi.New()
	server := httptest.NewServer(stub.Router())
	t.Cleanup(server.Close)
	t.Setenv("CMMS_API_URL", server.URL)

	out := new(bytes.Buffer)
	InventoryCmd.SetOut(out)
	InventoryCmd.SetErr(out)
	InventoryCmd.SetArgs(args)

	assert.NoError(t, InventoryCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestTransfersCommandEmptyHistoryMessage(t *testing.T) {
	out := runInventoryCommand(t, "transfers")

	assert.Contains(t, out, "No transfers found")
}

func TestReceiptsCommandEmptyHistoryMessage(t *testing.T) {
	out := runInventoryCommand(t, "receipts")

	assert.Contains(t, out, "No receipts found")
}
