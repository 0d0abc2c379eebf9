package soap

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/epos-dev/go-epos/epos"
)

func render(t *testing.T, cmd epos.Command) string {
	t.Helper()

	fragment, err := epos.Render(cmd)
	require.NoError(t, err)

	return fragment
}

func TestBuildRequest_NormalMode(t *testing.T) {
	require := require.New(t)

	fragments := []string{
		render(t, &epos.Text{Data: "hello\n"}),
		render(t, &epos.Cut{Type: epos.CutFeed}),
	}

	body := string(BuildRequest(epos.ModeNormal, fragments, ""))
	require.Equal(`<?xml version="1.0" encoding="utf-8"?>`+
		`<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">`+
		`<s:Body><epos-print xmlns="http://www.epson-pos.com/schemas/2011/03/epos-print">`+
		"<text>hello\n</text>"+`<cut type="feed"/>`+
		`</epos-print></s:Body></s:Envelope>`, body)
}

func TestBuildRequest_PageMode(t *testing.T) {
	require := require.New(t)

	fragments := []string{
		render(t, &epos.Area{Width: 500, Height: 500}),
		render(t, &epos.Text{Data: "boxed\n"}),
	}

	body := string(BuildRequest(epos.ModePage, fragments, ""))

	// page mode nests the command stream under one extra page element
	require.Contains(body, `<epos-print xmlns="http://www.epson-pos.com/schemas/2011/03/epos-print">`+
		`<page><area x="0" y="0" width="500" height="500"/><text>boxed`+"\n"+`</text></page></epos-print>`)
}

func TestBuildRequest_JobIDHeader(t *testing.T) {
	require := require.New(t)

	body := string(BuildRequest(epos.ModeNormal, nil, "job-42"))
	require.Contains(body, `<s:Header><parameter xmlns="http://www.epson-pos.com/schemas/2011/03/epos-print">`+
		`<printjobid>job-42</printjobid></parameter></s:Header>`)

	// without a job ID no header element is emitted
	body = string(BuildRequest(epos.ModeNormal, nil, ""))
	require.NotContains(body, "<s:Header>")
}

// TestBuildRequest_EscapeOnce pins the codec/envelope boundary invariant:
// payload bytes are escaped exactly once, at render time, and envelope assembly
// never re-escapes. Device escape sequences reach the wire verbatim and
// structural characters decode back to the original payload.
func TestBuildRequest_EscapeOnce(t *testing.T) {
	require := require.New(t)

	barcodeData := "{B{1No.{{123456"
	textData := "fish & <chips>\n"

	fragments := []string{
		render(t, &epos.Text{Data: textData}),
		render(t, &epos.Barcode{Data: barcodeData, Type: epos.BarcodeCode128}),
	}

	body := string(BuildRequest(epos.ModeNormal, fragments, ""))

	// the {-sequences appear unescaped exactly once
	require.Equal(1, strings.Count(body, "{B{1No.{{123456"))
	// structural characters are entity-escaped exactly once, never doubly
	require.Equal(1, strings.Count(body, "fish &amp; &lt;chips>"))
	require.NotContains(body, "&amp;amp;")
	require.NotContains(body, "&amp;lt;")

	// an XML parse of the envelope recovers the original payloads
	var probe struct {
		Body struct {
			Print struct {
				Text    string `xml:"text"`
				Barcode string `xml:"barcode"`
			} `xml:"epos-print"`
		} `xml:"Body"`
	}
	require.NoError(xml.Unmarshal([]byte(body), &probe))
	require.Equal(textData, probe.Body.Print.Text)
	require.Equal(barcodeData, probe.Body.Print.Barcode)
}

func TestParseResponse(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		desc            string
		body            string
		wantErr         error
		expectedSuccess bool
		expectedCode    string
		expectedStatus  uint32
		expectedBattery uint32
	}{
		{
			desc: "successful print",
			body: `<?xml version="1.0" encoding="utf-8"?>` +
				`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">` +
				`<soapenv:Body>` +
				`<response xmlns="http://www.epson-pos.com/schemas/2011/03/epos-print" success="true" code="" status="251658262" battery="0"/>` +
				`</soapenv:Body></soapenv:Envelope>`,
			expectedSuccess: true,
			expectedStatus:  251658262,
		},
		{
			desc: "device-reported failure",
			body: `<?xml version="1.0" encoding="utf-8"?>` +
				`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">` +
				`<soapenv:Body>` +
				`<response xmlns="http://www.epson-pos.com/schemas/2011/03/epos-print" success="false" code="EPTR_COVER_OPEN" status="2147483680" battery="6"/>` +
				`</soapenv:Body></soapenv:Envelope>`,
			expectedSuccess: false,
			expectedCode:    "EPTR_COVER_OPEN",
			expectedStatus:  2147483680,
			expectedBattery: 6,
		},
		{
			desc: "numeric success spelling",
			body: `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/"><s:Body>` +
				`<response success="1" code="" status="2" battery="0"/>` +
				`</s:Body></s:Envelope>`,
			expectedSuccess: true,
			expectedStatus:  2,
		},
		{
			desc:    "not xml",
			body:    "surprise, not XML",
			wantErr: ErrMalformedReply,
		},
		{
			desc:    "envelope without response element",
			body:    `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/"><s:Body/></s:Envelope>`,
			wantErr: ErrMalformedReply,
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		resp, err := ParseResponse([]byte(test.body))
		if test.wantErr != nil {
			require.ErrorIs(err, test.wantErr)
			continue
		}
		require.NoError(err)
		require.Equal(test.expectedSuccess, resp.Success)
		require.Equal(test.expectedCode, resp.Code)
		require.Equal(test.expectedStatus, resp.Status)
		require.Equal(test.expectedBattery, resp.Battery)
	}
}
