package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ieso-dashboard/internal/analysis"
	"ieso-dashboard/internal/dashboard"
	"ieso-dashboard/internal/data"
	"ieso-dashboard/internal/model"
	"ieso-dashboard/internal/process"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "stats":
		cmdStats(os.Args[2:])
	case "hourly":
		cmdHourly(os.Args[2:])
	case "merge":
		cmdMerge(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli stats --data energy_hourly.csv.gz --start 2025-05-01 --end 2025-05-31 --out results/stats.csv")
	fmt.Println("  cli hourly --data energy_hourly.csv.gz --start 2025-05-01 --end 2025-05-31 --out results/hourly.csv")
	fmt.Println("  cli merge --day-ahead da.csv --real-time rt.csv --out energy_hourly.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - stats writes the top/bottom location tables for every metric; add")
	fmt.Println("    --direction and --metric to print one ranked table instead")
	fmt.Println("  - when --data is omitted, the published dataset is downloaded")
	fmt.Println("  - merge joins raw day-ahead and real-time reports into the hourly layout")
}

func cmdStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to hourly dataset CSV (.csv or .csv.gz); empty = download")
	startStr := fs.String("start", "", "Start date YYYY-MM-DD (inclusive)")
	endStr := fs.String("end", "", "End date YYYY-MM-DD (inclusive)")
	outPath := fs.String("out", "results/stats.csv", "Output CSV path")
	dirStr := fs.String("direction", "", "Optional: print one table (low|high), requires --metric")
	metricStr := fs.String("metric", "", "Optional: metric column name for --direction")
	_ = fs.Parse(args)

	records := loadRecords(*dataPath)
	records = filterRange(records, *startStr, *endStr)

	stats, err := analysis.BuildStatistics(records)
	if err != nil {
		fmt.Println("No data in selected date range.")
		os.Exit(1)
	}

	if *dirStr != "" || *metricStr != "" {
		printTable(stats, *dirStr, *metricStr)
		return
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := data.WriteStatisticsCSV(f, stats); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d ranked tables to %s\n", len(stats.Tables), *outPath)
}

func cmdHourly(args []string) {
	fs := flag.NewFlagSet("hourly", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to hourly dataset CSV (.csv or .csv.gz); empty = download")
	startStr := fs.String("start", "", "Start date YYYY-MM-DD (inclusive)")
	endStr := fs.String("end", "", "End date YYYY-MM-DD (inclusive)")
	outPath := fs.String("out", "results/hourly.csv", "Output CSV path")
	_ = fs.Parse(args)

	records := loadRecords(*dataPath)
	records = filterRange(records, *startStr, *endStr)
	if len(records) == 0 {
		fmt.Println("No data in selected date range.")
		os.Exit(1)
	}

	rows := analysis.AverageByHour(records)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := data.WriteHourlyCSV(f, rows); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d hourly rows to %s\n", len(rows), *outPath)
}

func cmdMerge(args []string) {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	daPath := fs.String("day-ahead", "", "Path to raw day-ahead hourly report CSV")
	rtPath := fs.String("real-time", "", "Path to raw real-time 5-min report CSV")
	outPath := fs.String("out", "energy_hourly.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *daPath == "" || *rtPath == "" {
		fmt.Println("--day-ahead and --real-time are required")
		os.Exit(2)
	}

	dayAhead, err := process.LoadRawFile(*daPath)
	if err != nil {
		panic(err)
	}
	realTime, err := process.LoadRawFile(*rtPath)
	if err != nil {
		panic(err)
	}

	records := process.MergeHourly(dayAhead, realTime)

	f, err := os.Create(*outPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := data.WriteRecordsCSV(f, records); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d hourly records to %s\n", len(records), *outPath)
}

func loadRecords(path string) []model.HourlyRecord {
	if path != "" {
		records, err := data.LoadRecordsFile(path)
		if err != nil {
			panic(err)
		}
		return records
	}
	datasets := data.DefaultDatasets()
	ds, err := data.FindDataset(datasets, "energy_hourly")
	if err != nil {
		panic(err)
	}
	records, err := data.NewClient().FetchDataset(ds)
	if err != nil {
		panic(err)
	}
	return records
}

func filterRange(records []model.HourlyRecord, startStr, endStr string) []model.HourlyRecord {
	if startStr == "" && endStr == "" {
		return records
	}
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		fmt.Println("--start must be YYYY-MM-DD")
		os.Exit(2)
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		fmt.Println("--end must be YYYY-MM-DD")
		os.Exit(2)
	}
	return analysis.FilterByDateRange(records, start, end)
}

func printTable(stats *analysis.Statistics, dirStr, metricStr string) {
	direction, err := model.ParseDirection(dirStr)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	metric, err := model.ParseMetric(metricStr)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	chart, err := dashboard.BuildBarChart(stats, dashboard.Selection{Direction: direction, Metric: metric})
	if err != nil {
		panic(err)
	}

	fmt.Println(chart.Title)
	for i, loc := range chart.Locations {
		fmt.Printf("%2d. %-24s %s\n", i+1, loc, chart.Text[i])
	}
}
