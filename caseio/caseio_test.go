package caseio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/freeride/caseio"
	"github.com/katalvlaran/freeride/ticket"
)

func TestParse(t *testing.T) {
	in := "2\n3\nBATUMI TBILISI\nTBILISI  KUTAISI\n\nPOTI ZUGDIDI\n0\n"
	cases, err := caseio.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, 1, cases[0].Index)
	assert.Equal(t, []ticket.Pair{
		{A: "BATUMI", B: "TBILISI"},
		{A: "TBILISI", B: "KUTAISI"},
		{A: "POTI", B: "ZUGDIDI"},
	}, cases[0].Tickets)

	assert.Equal(t, 2, cases[1].Index)
	assert.Empty(t, cases[1].Tickets)
}

func TestParse_Malformed(t *testing.T) {
	inputs := map[string]string{
		"empty":           "",
		"bad case count":  "x\n",
		"negative count":  "1\n-2\n",
		"missing case":    "2\n1\nA B\n",
		"short ticket":    "1\n1\nA\n",
		"long ticket":     "1\n1\nA B C\n",
		"missing tickets": "1\n3\nA B\n",
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := caseio.Parse(strings.NewReader(in))
			assert.ErrorIs(t, err, caseio.ErrMalformedInput)
		})
	}
}

func TestParse_LineNumbers(t *testing.T) {
	_, err := caseio.Parse(strings.NewReader("1\n2\nA B\n\nC\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 5")
}

func TestWriteCase(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, caseio.WriteCase(&buf, 3, []ticket.Pair{{A: "KUTAISI", B: "POTI"}, {A: "ZUGDIDI", B: "BATUMI"}}))
	assert.Equal(t, "Case #3: 2\nKUTAISI POTI\nZUGDIDI BATUMI\n", buf.String())

	buf.Reset()
	require.NoError(t, caseio.WriteCase(&buf, 1, nil))
	assert.Equal(t, "Case #1: 0\n", buf.String())
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, caseio.WriteDOT(&buf, []ticket.Pair{
		{A: "BATUMI", B: "TBILISI"},
		{A: "NEW-YORK", B: "9AM"},
		{A: "A_1", B: ""},
	}))
	want := "graph {\n" +
		"  BATUMI -- TBILISI\n" +
		"  \"NEW-YORK\" -- \"9AM\"\n" +
		"  A_1 -- \"\"\n" +
		"}\n"
	assert.Equal(t, want, buf.String())
}
