package bdata

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"git.thinkinpower.net/cardkit/mod"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

var (
	binDataFileExt   = ".bd"
	feedbackFileName = "feedback" + binDataFileExt
	binDataHeader    = []string{"prefix", "type", "level", "region", "bank", "country"}
)

func readBinFile(path string) ([]mod.BinRecord, error) {
	var (
		f   *os.File
		err error
	)
	if f, err = os.Open(path); err != nil {
		return nil, errors.Wrapf(err, "open bin data file %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := make([]mod.BinRecord, 0, 64)
	lineNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNum++
		if err != nil {
			logger.Errorf("read %s line %d error: %s", path, lineNum, err)
			continue
		}
		//skip header
		if lineNum == 1 && len(row) > 0 && strings.EqualFold(row[0], binDataHeader[0]) {
			continue
		}
		record, err := parse(row)
		if err != nil {
			logger.Errorf("parse bin data error: %s, file: %s, line: %d", err, path, lineNum)
			continue
		}
		result = append(result, record)
	}
	return result, nil
}

//prefix,type,level,region,bank,country
func parse(row []string) (mod.BinRecord, error) {
	if len(row) < 3 {
		return mod.BinRecord{}, errors.Errorf("expected at least 3 columns, got %d", len(row))
	}
	field := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	record := mod.BinRecord{Prefix: field(0)}
	if !ValidPrefix(record.Prefix) {
		return mod.BinRecord{}, errors.Errorf("invalid bin %q", record.Prefix)
	}
	var ok bool
	if record.Type, ok = mod.ParseCardType(field(1)); !ok {
		return mod.BinRecord{}, errors.Errorf("invalid card type %q", field(1))
	}
	if record.Level, ok = mod.ParseCardLevel(field(2)); !ok {
		return mod.BinRecord{}, errors.Errorf("invalid card level %q", field(2))
	}
	if record.Region, ok = mod.ParseCardRegion(field(3)); !ok {
		return mod.BinRecord{}, errors.Errorf("invalid region %q", field(3))
	}
	record.Bank = field(4)
	record.Country = field(5)
	return record, nil
}

func appendBinFile(path string, record mod.BinRecord) error {
	var (
		f   *os.File
		err error
	)
	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "create %s", filepath.Dir(path))
	}
	writeHeader := false
	if _, err = os.Stat(path); err != nil && os.IsNotExist(err) {
		writeHeader = true
	}
	if f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err = w.Write(binDataHeader); err != nil {
			return errors.Wrap(err, "write header")
		}
	}
	if err = w.Write([]string{
		record.Prefix,
		string(record.Type),
		string(record.Level),
		string(record.Region),
		record.Bank,
		record.Country}); err != nil {
		return errors.Wrap(err, "write bin data")
	}
	w.Flush()
	if err = w.Error(); err != nil {
		logger.Error(err.Error())
		return errors.Wrap(err, "save bin data")
	}
	return nil
}
