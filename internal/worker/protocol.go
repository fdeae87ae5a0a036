// Package worker serves the kernel over a line-delimited JSON command
// protocol, the same messages a browser host posts to its compute worker.
//
// Each request line carries a cmd and an optional requestId:
//
//	{"cmd":"init","requestId":1}
//	{"cmd":"compute","requestId":2,"data":[1,2,3]}
//	{"cmd":"compute_vwap","requestId":3,"prices":[1,2],"vols":[10,10]}
//	{"cmd":"compute_vwap_checked","requestId":4,"prices":[1],"vols":[1,2]}
//
// and produces exactly one reply line echoing the requestId, except for
// lines without a cmd, which are dropped.
package worker

import json "github.com/goccy/go-json"

// Command names.
const (
	CmdInit               = "init"
	CmdCompute            = "compute"
	CmdComputeVWAP        = "compute_vwap"
	CmdComputeVWAPChecked = "compute_vwap_checked"

	CmdReady  = "ready"
	CmdResult = "result"
	CmdError  = "error"
)

// Request is one host message.
type Request struct {
	Cmd       string          `json:"cmd"`
	RequestID json.RawMessage `json:"requestId,omitempty"`

	// BaseURL is accepted on init for compatibility with browser hosts
	// and otherwise ignored.
	BaseURL string `json:"baseUrl,omitempty"`

	Data   Values `json:"data,omitempty"`
	Prices Values `json:"prices,omitempty"`
	Vols   Values `json:"vols,omitempty"`
}

// Response is one reply message.
type Response struct {
	Cmd       string          `json:"cmd"`
	RequestID json.RawMessage `json:"requestId,omitempty"`

	Result *Values `json:"result,omitempty"`
	Kernel string  `json:"kernel,omitempty"`

	// Set by compute_vwap_checked only.
	OK          *bool  `json:"ok,omitempty"`
	TotalWeight *Float `json:"totalWeight,omitempty"`
	Pairs       *int   `json:"pairs,omitempty"`
	Skipped     *int   `json:"skipped,omitempty"`

	Error string `json:"error,omitempty"`
}

func errorResponse(id json.RawMessage, msg string) Response {
	return Response{Cmd: CmdError, RequestID: id, Error: msg}
}

func resultResponse(id json.RawMessage, values []float64) Response {
	v := Values(values)
	return Response{Cmd: CmdResult, RequestID: id, Result: &v}
}
