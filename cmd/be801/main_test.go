// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/DanStevens/DigitalElectronics-sub000/be801"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	img, err := parseHex("53 4f 50 # header\n2F e0\n0x63 ; jmp\n")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x53, 0x4F, 0x50, 0x2F, 0xE0, 0x63}, img)

	_, err = parseHex("53\n4g")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	_, err = parseHex("100")
	require.Error(t, err)
}

func TestMonitor(t *testing.T) {
	img, err := parseHex("53 4f 50 2f e0 63")
	require.NoError(t, err)
	c := be801.New()
	require.NoError(t, c.LoadRAM(img))

	var b bytes.Buffer
	m := monitor{c: c, w: &b}
	require.NoError(t, m.run(100))
	assert.Equal(t, 100, m.clocks)
	assert.Equal(t, "OUT: 3\nOUT: 6\nOUT: 9\nOUT: 12\nOUT: 15\n", b.String())
}

func TestCRLFWriter(t *testing.T) {
	var b strings.Builder
	n, err := crlfWriter{&b}.Write([]byte("a\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "a\r\nb\r\n", b.String())
}
