// Copyright 2022 FioMetrics Developers

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

// 	http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/perfdash/fiometrics/pkg/fiometrics"
	"github.com/perfdash/fiometrics/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	output  string
	outfile string
	rootCmd = &cobra.Command{
		Use:   "fiometrics [fio output json filepath]",
		Short: "A tool to extract metrics from fio output",
		Long: `fiometrics parses the JSON output of an fio run and emits
		one normalized record per job: IOPS, bandwidth, latency
		(min/max/mean), filesize, thread count and the reconstructed
		start/end times.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Metrics(output, outfile, args[0])
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Options(json)")
	rootCmd.PersistentFlags().StringVarP(&outfile, "outfile", "e", "", "The file where extracted metrics will be written")
}

// Execute executes the main command
func Execute() error {
	return rootCmd.Execute()
}

// Metrics extracts the per-job metrics of an fio output file and prints them.
func Metrics(output, outfile, path string) error {
	runner := &fiometrics.MetricsRunner{}
	testName := "FIO metrics extraction"
	var result *printer.TestOutput
	jobMetrics, err := runner.GetMetrics(path)
	if err != nil {
		result = printer.MakeTestOutput(testName, printer.StatusError, err.Error(), jobMetrics)
	} else {
		var mesg string
		for _, job := range jobMetrics {
			mesg += fmt.Sprintf("\n%s\n", job.Print())
		}
		result = printer.MakeTestOutput(testName, printer.StatusOK, mesg, jobMetrics)
	}
	var wrappedResult = []*printer.TestOutput{result}
	if !PrintAndJsonOutput(wrappedResult, output, outfile) {
		result.Print()
	}
	return err
}

// PrintAndJsonOutput prints JSON output to stdout and to file if arguments say so
// Returns whether we have generated output or JSON
func PrintAndJsonOutput(result []*printer.TestOutput, output string, outfile string) bool {
	if output == "json" {
		jsonRes, _ := json.MarshalIndent(result, "", "    ")
		if len(outfile) > 0 {
			err := os.WriteFile(outfile, jsonRes, 0666)
			if err != nil {
				fmt.Println("Error writing output:", err.Error())
				os.Exit(2)
			}
		} else {
			fmt.Println(string(jsonRes))
		}
		return true
	}
	return false
}
