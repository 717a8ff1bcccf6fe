package filemode

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type modeFixture struct {
	octal string
	perm  string
}

// loadModes reads testdata/modes.txt, which pairs every mode from 0000 to
// 7777 with its ls -l permission string.
func loadModes(t *testing.T) []modeFixture {
	t.Helper()
	file, err := os.Open("testdata/modes.txt")
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	var fixtures []modeFixture
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "\t")
		require.Len(t, parts, 2, "malformed fixture line %q", line)
		fixtures = append(fixtures, modeFixture{octal: parts[0], perm: parts[1]})
	}
	require.NoError(t, scanner.Err())
	require.Len(t, fixtures, 4096)
	return fixtures
}

func TestParseOctal_MarshalToString(t *testing.T) {
	for _, fx := range loadModes(t) {
		mode, err := ParseOctal(OctalString(fx.octal))
		require.NoError(t, err, fx.octal)
		assert.Equal(t, fx.perm, mode.String()[1:], "octal %s", fx.octal)
	}
}

func TestParseString_MarshalToDecimal(t *testing.T) {
	for _, fx := range loadModes(t) {
		mode, err := ParseString("-" + fx.perm)
		require.NoError(t, err, fx.perm)

		expected, err := OctalToDecimal(fx.octal)
		require.NoError(t, err)
		assert.Equal(t, uint32(expected), mode.Decimal(), "mode string %s", fx.perm)
	}
}

func TestParseString_Sticky(t *testing.T) {
	lower, err := ParseString("---------t")
	require.NoError(t, err)
	assert.True(t, lower.Special.Sticky)
	assert.True(t, lower.Other.Execute)

	upper, err := ParseString("---------T")
	require.NoError(t, err)
	assert.True(t, upper.Special.Sticky)
	assert.False(t, upper.Other.Execute)
}

func TestParseString_SetuidSetgid(t *testing.T) {
	tests := []struct {
		input   string
		setuid  bool
		setgid  bool
		execute func(FileMode) bool
		want    bool
	}{
		{"---s------", true, false, func(f FileMode) bool { return f.User.Execute }, true},
		{"---S------", true, false, func(f FileMode) bool { return f.User.Execute }, false},
		{"------s---", false, true, func(f FileMode) bool { return f.Group.Execute }, true},
		{"------S---", false, true, func(f FileMode) bool { return f.Group.Execute }, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.setuid, mode.Special.Setuid)
			assert.Equal(t, tt.setgid, mode.Special.Setgid)
			assert.Equal(t, tt.want, tt.execute(mode))
		})
	}
}

func TestParseString_FileTypes(t *testing.T) {
	tests := []struct {
		char    string
		flag    Flag
		decimal uint32
	}{
		{"d", Directory, 0o040000},
		{"b", BlockDevice, 0o060000},
		{"c", CharacterDevice, 0o020000},
		{"l", SymbolicLink, 0o120000},
		{"s", Socket, 0o140000},
		{"p", NamedPipe, 0o010000},
	}

	for _, tt := range tests {
		t.Run(tt.char+" implies "+tt.flag.String(), func(t *testing.T) {
			mode, err := ParseString(tt.char + "---------")
			require.NoError(t, err)
			assert.True(t, mode.Special.Get(tt.flag))
			assert.Equal(t, []Flag{tt.flag}, mode.Special.Enabled())
			assert.Equal(t, tt.decimal, mode.Decimal())
			assert.Equal(t, tt.char+"---------", mode.String())
		})
	}
}

func TestParseString_DashSetsNoType(t *testing.T) {
	mode, err := ParseString("-rw-r--r--")
	require.NoError(t, err)
	assert.Empty(t, mode.Special.Enabled())
	assert.Equal(t, uint32(0o644), mode.Decimal())
}

func TestParseString_Errors(t *testing.T) {
	t.Run("wrong length", func(t *testing.T) {
		for _, input := range []string{"", "-", "rwxr-xr-x", "-rwxr-xr-xx", "drwxr-xr-x "} {
			_, err := ParseString(input)
			require.Error(t, err, input)
			assert.ErrorIs(t, err, ErrFormat)

			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, len(input), formatErr.Length)
			assert.Contains(t, err.Error(), "must be 10 characters")
		}
	})

	t.Run("unrecognized type", func(t *testing.T) {
		_, err := ParseString("xrwxr-xr-x")
		assert.ErrorIs(t, err, ErrUnrecognizedTypeChar)

		var typeErr *UnrecognizedTypeCharError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, 'x', typeErr.Char)
	})

	t.Run("unexpected character", func(t *testing.T) {
		_, err := ParseString("-rwxr-q-wx")
		assert.ErrorIs(t, err, ErrUnexpectedChar)

		var charErr *UnexpectedCharError
		require.ErrorAs(t, err, &charErr)
		assert.Equal(t, 'q', charErr.Char)
		assert.Equal(t, 6, charErr.Position)
		assert.Equal(t, "-rwxr-q-wx", charErr.Input)
	})

	t.Run("letter in wrong slot", func(t *testing.T) {
		_, err := ParseString("-wrxr-xr-x")
		var charErr *UnexpectedCharError
		require.ErrorAs(t, err, &charErr)
		assert.Equal(t, 'w', charErr.Char)
		assert.Equal(t, 1, charErr.Position)
	})
}

// The same validator serves every slot, so s/S/t/T are accepted outside the
// execute positions too. Only the execute positions drive the special bits.
func TestParseString_SpecialLettersOutsideExecuteSlot(t *testing.T) {
	mode, err := ParseString("-sT-------")
	require.NoError(t, err)
	assert.True(t, mode.User.Read)
	assert.False(t, mode.User.Write)
	assert.False(t, mode.Special.Setuid)
	assert.False(t, mode.Special.Sticky)

	mode, err = ParseString("------t---")
	require.NoError(t, err)
	assert.True(t, mode.Group.Execute)
	assert.False(t, mode.Special.Setgid)
	assert.False(t, mode.Special.Sticky)
}

func TestParseNumber_Range(t *testing.T) {
	for _, n := range []int64{-1, -0o755, MaxMode + 1, 1 << 40} {
		_, err := ParseNumber(n)
		require.Error(t, err, n)
		assert.ErrorIs(t, err, ErrRange)

		var rangeErr *RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, n, rangeErr.Value)
		assert.Equal(t, MaxMode, rangeErr.Max)
	}

	for _, n := range []int64{0, 0o777, 0xFFFFFFFF, MaxMode} {
		_, err := ParseNumber(n)
		assert.NoError(t, err, n)
	}
}

func TestParseNumber_Permissions(t *testing.T) {
	mode, err := ParseNumber(0o4751)
	require.NoError(t, err)
	assert.Equal(t, Triad{Read: true, Write: true, Execute: true}, mode.User)
	assert.Equal(t, Triad{Read: true, Write: false, Execute: true}, mode.Group)
	assert.Equal(t, Triad{Read: false, Write: false, Execute: true}, mode.Other)
	assert.True(t, mode.Special.Setuid)
	assert.False(t, mode.Special.Setgid)
	assert.Equal(t, "-rwsr-x--x", mode.String())
	assert.Equal(t, "rwxr-x--x", mode.Permissions.String())
}

// Composite type flags overlap, so a single type field can read as several
// types at once. The decoder reports all of them rather than picking one.
func TestParseNumber_OverlappingTypeBits(t *testing.T) {
	whiteout, err := ParseNumber(0o160000)
	require.NoError(t, err)
	assert.Equal(t, []Flag{
		CharacterDevice, Directory, RegularFile, Socket, BlockDevice, SymbolicLink, Whiteout,
	}, whiteout.Special.Enabled())
	assert.Equal(t, "l---------", whiteout.String())

	socket, err := ParseNumber(0o140755)
	require.NoError(t, err)
	assert.True(t, socket.Special.Socket)
	assert.True(t, socket.Special.Directory)
	assert.True(t, socket.Special.RegularFile)
	assert.False(t, socket.Special.Whiteout)
	assert.Equal(t, "srwxr-xr-x", socket.String())
}

func TestDecimal_HandBuiltTypesAreUnioned(t *testing.T) {
	mode := Blank()
	mode.Special.SymbolicLink = true
	assert.Equal(t, MaskCharacterDevice|MaskRegularFile, mode.Decimal())

	mode.Special.BlockDevice = true
	assert.Equal(t, MaskWhiteout, mode.Decimal())
}

func TestDecodeEncode_FixedPoint(t *testing.T) {
	for n := uint32(0); n <= 0xFFFF; n++ {
		decoded := FromUint32(n)
		require.Equal(t, n, decoded.Decimal(), "mode %o", n)

		again, err := ParseNumber(int64(decoded.Decimal()))
		require.NoError(t, err)
		require.Equal(t, decoded, again, "mode %o", n)
	}
}

func TestParseString_RoundTrip(t *testing.T) {
	for _, input := range []string{
		"drwxr-xr-x", "-rwsr-sr-t", "lrwxrwxrwx", "crw--w----", "brw-rw----",
		"prw-r--r--", "srwxrwxrwx", "-r-S--S--T", "drwxrwxrwt",
	} {
		mode, err := ParseString(input)
		require.NoError(t, err, input)
		assert.Equal(t, input, mode.String())

		decoded, err := ParseNumber(int64(mode.Decimal()))
		require.NoError(t, err)
		assert.Equal(t, input, decoded.String())
	}
}

func TestOctal(t *testing.T) {
	mode, err := ParseString("drwxr-xr-x")
	require.NoError(t, err)
	assert.Equal(t, "40755", mode.Octal())
	assert.Equal(t, "40755", ModeToOctal(mode))

	assert.Equal(t, "00000", Blank().Octal())
	assert.Equal(t, "0007", NumberToOctal(7, 4))
	assert.Equal(t, "100644", NumberToOctal(0o100644, 5))
}

func TestOctalToDecimal(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"755", 0o755, false},
		{"0755", 0o755, false},
		{"0o755", 0o755, false},
		{"100644", 0o100644, false},
		{"", 0, true},
		{"789", 0, true},
		{"rwx", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := OctalToDecimal(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOctal)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOctal_Variants(t *testing.T) {
	fromString, err := ParseOctal(OctalString("4755"))
	require.NoError(t, err)
	fromNumber, err := ParseOctal(OctalNumber(0o4755))
	require.NoError(t, err)
	assert.Equal(t, fromString, fromNumber)

	_, err = ParseOctal(OctalNumber(-1))
	assert.ErrorIs(t, err, ErrRange)

	_, err = ParseOctal(OctalString("-1"))
	assert.ErrorIs(t, err, ErrRange)

	_, err = ParseOctal(OctalString("9"))
	assert.ErrorIs(t, err, ErrOctal)
	assert.True(t, errors.Is(err, ErrOctal))
}

func TestBlank(t *testing.T) {
	blank := Blank()
	assert.Equal(t, FileMode{}, blank)
	assert.Equal(t, Triad{}, BlankTriad())
	assert.Equal(t, Special{}, BlankSpecial())
	assert.Equal(t, "----------", blank.String())
	assert.Equal(t, uint32(0), blank.Decimal())
}

func TestCopyDoesNotAlias(t *testing.T) {
	original, err := ParseString("-rw-r--r--")
	require.NoError(t, err)

	modified := original
	modified.User.Execute = true
	modified.Special.Setuid = true

	assert.Equal(t, "-rw-r--r--", original.String())
	assert.Equal(t, "-rwsr--r--", modified.String())
}

func TestFlags(t *testing.T) {
	flags := Flags()
	require.Len(t, flags, 11)
	assert.Equal(t, Sticky, flags[0])
	assert.Equal(t, Whiteout, flags[len(flags)-1])

	for _, f := range flags {
		parsed, err := ParseFlag(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := ParseFlag("appendOnly")
	assert.ErrorIs(t, err, ErrUnknownFlag)

	assert.False(t, Setuid.IsType())
	assert.True(t, NamedPipe.IsType())
	assert.False(t, Flag(42).Valid())
	assert.Equal(t, uint32(0), Flag(42).Mask())
	assert.False(t, Flag(42).Test(0xFFFFFFFF))
}

func TestTextMarshaling(t *testing.T) {
	mode, err := ParseString("drwxr-sr-x")
	require.NoError(t, err)

	data, err := json.Marshal(struct {
		Mode FileMode `json:"mode"`
	}{mode})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"drwxr-sr-x"}`, string(data))

	var cfg struct {
		Symbolic FileMode `yaml:"symbolic"`
		Octal    FileMode `yaml:"octal"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("symbolic: lrwxrwxrwx\noctal: \"0644\"\n"), &cfg))
	assert.True(t, cfg.Symbolic.Special.SymbolicLink)
	assert.Equal(t, uint32(0o644), cfg.Octal.Decimal())

	untouched := mode
	assert.Error(t, untouched.UnmarshalText([]byte("drwxr-xr-?")))
	assert.Equal(t, mode, untouched)
}

func TestRecord(t *testing.T) {
	mode, err := ParseString("-rwsr-xr-x")
	require.NoError(t, err)

	record := mode.Record()
	assert.Equal(t, "-rwsr-xr-x", record.Symbolic)
	assert.Equal(t, "04755", record.Octal)
	assert.Equal(t, uint32(0o4755), record.Decimal)
	assert.True(t, record.Special["setuid"])
	assert.False(t, record.Special["whiteout"])
	assert.Len(t, record.Special, 11)

	assert.Equal(t, mode, record.FileMode())
}
