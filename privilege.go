package winpriv

// Privilege names one of the well-known windows token privileges.
// The set is closed; values compare by identity and match the names
// the OS itself uses for LookupPrivilegeValue.
type Privilege string

const (
	SeAssignPrimaryTokenPrivilege             Privilege = "SeAssignPrimaryTokenPrivilege"
	SeAuditPrivilege                          Privilege = "SeAuditPrivilege"
	SeBackupPrivilege                         Privilege = "SeBackupPrivilege"
	SeChangeNotifyPrivilege                   Privilege = "SeChangeNotifyPrivilege"
	SeCreateGlobalPrivilege                   Privilege = "SeCreateGlobalPrivilege"
	SeCreatePagefilePrivilege                 Privilege = "SeCreatePagefilePrivilege"
	SeCreatePermanentPrivilege                Privilege = "SeCreatePermanentPrivilege"
	SeCreateSymbolicLinkPrivilege             Privilege = "SeCreateSymbolicLinkPrivilege"
	SeCreateTokenPrivilege                    Privilege = "SeCreateTokenPrivilege"
	SeDebugPrivilege                          Privilege = "SeDebugPrivilege"
	SeDelegateSessionUserImpersonatePrivilege Privilege = "SeDelegateSessionUserImpersonatePrivilege"
	SeEnableDelegationPrivilege               Privilege = "SeEnableDelegationPrivilege"
	SeImpersonatePrivilege                    Privilege = "SeImpersonatePrivilege"
	SeIncreaseBasePriorityPrivilege           Privilege = "SeIncreaseBasePriorityPrivilege"
	SeIncreaseQuotaPrivilege                  Privilege = "SeIncreaseQuotaPrivilege"
	SeIncreaseWorkingSetPrivilege             Privilege = "SeIncreaseWorkingSetPrivilege"
	SeLoadDriverPrivilege                     Privilege = "SeLoadDriverPrivilege"
	SeLockMemoryPrivilege                     Privilege = "SeLockMemoryPrivilege"
	SeMachineAccountPrivilege                 Privilege = "SeMachineAccountPrivilege"
	SeManageVolumePrivilege                   Privilege = "SeManageVolumePrivilege"
	SeProfileSingleProcessPrivilege           Privilege = "SeProfileSingleProcessPrivilege"
	SeRelabelPrivilege                        Privilege = "SeRelabelPrivilege"
	SeRemoteShutdownPrivilege                 Privilege = "SeRemoteShutdownPrivilege"
	SeRestorePrivilege                        Privilege = "SeRestorePrivilege"
	SeSecurityPrivilege                       Privilege = "SeSecurityPrivilege"
	SeShutdownPrivilege                       Privilege = "SeShutdownPrivilege"
	SeSyncAgentPrivilege                      Privilege = "SeSyncAgentPrivilege"
	SeSystemEnvironmentPrivilege              Privilege = "SeSystemEnvironmentPrivilege"
	SeSystemProfilePrivilege                  Privilege = "SeSystemProfilePrivilege"
	SeSystemtimePrivilege                     Privilege = "SeSystemtimePrivilege"
	SeTakeOwnershipPrivilege                  Privilege = "SeTakeOwnershipPrivilege"
	SeTcbPrivilege                            Privilege = "SeTcbPrivilege"
	SeTimeZonePrivilege                       Privilege = "SeTimeZonePrivilege"
	SeTrustedCredManAccessPrivilege           Privilege = "SeTrustedCredManAccessPrivilege"
	SeUndockPrivilege                         Privilege = "SeUndockPrivilege"
	SeUnsolicitedInputPrivilege               Privilege = "SeUnsolicitedInputPrivilege"
)

var knownPrivileges = map[Privilege]struct{}{
	SeAssignPrimaryTokenPrivilege:             {},
	SeAuditPrivilege:                          {},
	SeBackupPrivilege:                         {},
	SeChangeNotifyPrivilege:                   {},
	SeCreateGlobalPrivilege:                   {},
	SeCreatePagefilePrivilege:                 {},
	SeCreatePermanentPrivilege:                {},
	SeCreateSymbolicLinkPrivilege:             {},
	SeCreateTokenPrivilege:                    {},
	SeDebugPrivilege:                          {},
	SeDelegateSessionUserImpersonatePrivilege: {},
	SeEnableDelegationPrivilege:               {},
	SeImpersonatePrivilege:                    {},
	SeIncreaseBasePriorityPrivilege:           {},
	SeIncreaseQuotaPrivilege:                  {},
	SeIncreaseWorkingSetPrivilege:             {},
	SeLoadDriverPrivilege:                     {},
	SeLockMemoryPrivilege:                     {},
	SeMachineAccountPrivilege:                 {},
	SeManageVolumePrivilege:                   {},
	SeProfileSingleProcessPrivilege:           {},
	SeRelabelPrivilege:                        {},
	SeRemoteShutdownPrivilege:                 {},
	SeRestorePrivilege:                        {},
	SeSecurityPrivilege:                       {},
	SeShutdownPrivilege:                       {},
	SeSyncAgentPrivilege:                      {},
	SeSystemEnvironmentPrivilege:              {},
	SeSystemProfilePrivilege:                  {},
	SeSystemtimePrivilege:                     {},
	SeTakeOwnershipPrivilege:                  {},
	SeTcbPrivilege:                            {},
	SeTimeZonePrivilege:                       {},
	SeTrustedCredManAccessPrivilege:           {},
	SeUndockPrivilege:                         {},
	SeUnsolicitedInputPrivilege:               {},
}

// privilegeFromName maps a raw OS privilege name onto the closed set.
// Names the library does not know about report ok as false.
func privilegeFromName(name string) (Privilege, bool) {
	p := Privilege(name)
	_, ok := knownPrivileges[p]
	return p, ok
}

func (p Privilege) String() string {
	return string(p)
}
