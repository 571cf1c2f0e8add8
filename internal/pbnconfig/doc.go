// Package pbnconfig loads the pbnfmt CLI's optional ~/.pbnfmtrc.yaml
// configuration file via viper. It has nothing to do with the pbn library
// itself, which takes no configuration of its own — these knobs only
// affect how the CLI behaves.
package pbnconfig
