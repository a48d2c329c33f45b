package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thebagchi/go-cdr/internal/logger"
	"github.com/thebagchi/go-cdr/lib/buffer"
	"github.com/thebagchi/go-cdr/lib/cdr"
	"github.com/thebagchi/go-cdr/pkg/metrics"
)

var (
	dumpFile          string
	dumpSchema        string
	dumpEncapsulation bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Decode a file as a CDR stream and print its fields as JSON",
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&dumpFile, "file", "", "path to the CDR-encoded input file (required)")
	dumpCmd.Flags().StringVar(&dumpSchema, "schema", "", "comma-separated list of type tags to decode, e.g. i32,f64,str,bool")
	dumpCmd.Flags().BoolVar(&dumpEncapsulation, "encapsulation", true, "consume a 4-byte encapsulation header before decoding the schema")
	_ = dumpCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(os.Stderr, logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	order := cdr.LittleEndian
	if strings.EqualFold(cfg.ByteOrder, "big") {
		order = cdr.BigEndian
	}
	flavor := cdr.FlavorPlain
	if strings.EqualFold(cfg.Flavor, "dds") {
		flavor = cdr.FlavorDDS
	}

	raw, err := os.ReadFile(dumpFile)
	if err != nil {
		return err
	}
	log.Debug("loaded input", "file", dumpFile, "bytes", len(raw))

	codecMetrics := metrics.NewCodecMetrics()
	c := cdr.New(buffer.NewFromBytes(raw), order, flavor)

	if dumpEncapsulation {
		err := c.ReadEncapsulation()
		codecMetrics.Observe("read_encapsulation", 4, err)
		if err != nil {
			return err
		}
		log.Debug("read encapsulation", "byte_order", c.ByteOrder(), "pl_flag", c.PLFlag())
	}

	tags := splitSchema(dumpSchema)
	fields := make([]any, 0, len(tags))
	for _, tag := range tags {
		before := c.GetCurrentPosition()
		v, err := decodeTag(c, tag)
		codecMetrics.Observe("decode_"+tag, c.GetCurrentPosition()-before, err)
		if err != nil {
			return fmt.Errorf("decode %s: %w", tag, err)
		}
		fields = append(fields, v)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(fields)
}

func splitSchema(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func decodeTag(c *cdr.Codec, tag string) (any, error) {
	switch tag {
	case "bool":
		return c.DeserializeBool()
	case "i8":
		return c.DeserializeInt8()
	case "u8":
		return c.DeserializeUint8()
	case "i16":
		return c.DeserializeInt16()
	case "u16":
		return c.DeserializeUint16()
	case "i32":
		return c.DeserializeInt32()
	case "u32":
		return c.DeserializeUint32()
	case "i64":
		return c.DeserializeInt64()
	case "u64":
		return c.DeserializeUint64()
	case "f32":
		return c.DeserializeFloat32()
	case "f64":
		return c.DeserializeFloat64()
	case "str":
		data, charCount, err := c.DeserializeString()
		if err != nil {
			return nil, err
		}
		if data == nil {
			return "", nil
		}
		return string(data[:charCount]), nil
	default:
		return nil, fmt.Errorf("unknown schema tag %q", tag)
	}
}
