package telemetry

import "golang.org/x/exp/rand"

// sysLogEmitProbability is the per-publish chance of emitting one sys_log
// line.
const sysLogEmitProbability = 0.1

// sysLogLines are canned boot and runtime messages replayed on the sys_logs
// flow to exercise log-ingestion paths downstream.
var sysLogLines = []string{
	"kernel: [123456.789012] Initializing cgroup subsys cpuset",
	"kernel: [123456.789012] Initializing cgroup subsys cpu",
	"kernel: [123456.789012] Initializing cgroup subsys cpuacct",
	"sshd[12345]: Server listening on 0.0.0.0 port 22.",
	"sshd[12345]: Server listening on :: port 22.",
	"systemd[1]: Started ACPI event daemon.",
	"kernel: [123456.789012] EXT4-fs (sda1): re-mounted. Opts: (null)",
	"systemd-logind[6789]: New seat seat0.",
	"systemd-logind[6789]: Watching system buttons on /dev/input/event1 (Power Button)",
	"systemd-logind[6789]: Watching system buttons on /dev/input/event0 (Lid Switch)",
	"systemd[1]: Started Network Manager.",
	"NetworkManager[2345]: <info>  [1234567890.123] manager: NetworkManager state is now CONNECTED_GLOBAL",
	"kernel: [123456.789012] IPv6: ADDRCONF(NETDEV_UP): eth0: link is not ready",
	"kernel: [123456.789012] eth0: Link is Up - 100Mbps Full Duplex",
	"kernel: [123456.789012] IPv6: ADDRCONF(NETDEV_CHANGE): eth0: link becomes ready",
	"systemd[1]: Starting Authorization Manager...",
	"systemd[1]: Started Authorization Manager.",
	"systemd[1]: Starting Virtualization daemon...",
	"systemd[1]: Started Virtualization daemon.",
	"apport[3456]:  * Starting automatic crash report generation: apport",
	"kernel: [123456.789012] Bluetooth: Core ver 2.22",
	"kernel: [123456.789012] Bluetooth: HCI device and connection manager initialized",
	"kernel: [123456.789012] Bluetooth: HCI socket layer initialized",
	"kernel: [123456.789012] Bluetooth: L2CAP socket layer initialized",
	"kernel: [123456.789012] Bluetooth: SCO socket layer initialized",
	"systemd[1]: Reached target Bluetooth.",
	"kernel: [123456.789012] random: crng init done",
	"systemd[1]: Starting Load Kernel Modules...",
	"systemd[1]: Starting Apply Kernel Variables...",
	"systemd[1]: Starting udev Coldplug all Devices...",
	"systemd[1]: Starting Create Static Device Nodes in /dev...",
	"systemd[1]: Started Load Kernel Modules.",
	"systemd[1]: Started Apply Kernel Variables.",
	"systemd[1]: Started Create Static Device Nodes in /dev.",
	"systemd[1]: Starting udev Kernel Device Manager...",
	"systemd[1]: Started udev Kernel Device Manager.",
	"systemd[1]: Started udev Coldplug all Devices.",
	"systemd[1]: Reached target Local File Systems (Pre).",
	"systemd[1]: Reached target Local File Systems.",
	"systemd[1]: Starting Create Volatile Files and Directories...",
	"systemd[1]: Starting Network Time Synchronization...",
	"systemd[1]: Started Network Time Synchronization.",
	"systemd[1]: Started Create Volatile Files and Directories.",
	"systemd[1]: Reached target System Initialization.",
	"systemd[1]: Started Daily Cleanup of Temporary Directories.",
	"systemd[1]: Reached target Timers.",
	"systemd[1]: Listening on D-Bus System Message Bus Socket.",
	"systemd[1]: Reached target Sockets.",
	"systemd[1]: Reached target Basic System.",
	"avahi-daemon[7890]: Joining mDNS multicast group on interface eth0.IPv6 with address fe80::1234:5678:9abc:def0.",
	"avahi-daemon[7890]: New relevant interface eth0.IPv6 for mDNS.",
	"avahi-daemon[7890]: Network interface enumeration completed.",
	"avahi-daemon[7890]: Server startup complete. Host name is rover.local. Local service cookie is 123456789.",
	"systemd[1]: Started OpenSSH Daemon.",
	"apache2[23456]: AH00163: Apache/2.4.29 (Ubuntu) configured -- resuming normal operations",
	"apache2[23456]: AH00094: Command line: '/usr/sbin/apache2'",
	"systemd[1]: Started Login Service.",
	"systemd[1]: Reached target Multi-User System.",
	"systemd[1]: Starting Hostname Service...",
	"systemd[1]: Started Hostname Service.",
	"systemd[1]: Started Session c1 of user root.",
	"rsyslogd: [origin software=\"rsyslogd\" swVersion=\"8.32.0\" x-pid=\"11234\" x-info=\"http://www.rsyslog.com\"] rsyslogd was HUPed",
	"ntpd[2345]: ntpd 4.2.8p10@1.3728-o (1): Starting",
	"ntpd[2345]: Command line: ntpd -g -u ntp:ntp",
	"ntpd[2345]: proto: precision = 0.072 usec (-24)",
	"ntpd[2345]: Listen and drop on 0 v6wildcard [::]:123",
	"ntpd[2345]: Listen and drop on 1 v4wildcard 0.0.0.0:123",
	"ntpd[2345]: Listen normally on 2 lo 127.0.0.1:123",
	"ntpd[2345]: Listen normally on 3 eth0 192.168.1.100:123",
	"ntpd[2345]: Listening on routing socket on fd #22 for interface updates",
	"ntpd[2345]: Soliciting pool server 192.168.1.1",
	"ntpd[2345]: ntpd: time slew +0.001234 s",
}

// SysLogSource draws random system log lines from its own deterministic
// stream, kept separate from the motor noise streams so log emission never
// perturbs the physics.
type SysLogSource struct {
	rng *rand.Rand
}

// NewSysLogSource seeds the source from the top-level seed.
func NewSysLogSource(seed uint64) *SysLogSource {
	return &SysLogSource{rng: rand.New(rand.NewSource(seed))}
}

// Next reports whether a sys_log line should be emitted this publish and, if
// so, which one. The probability draw always advances the stream.
func (s *SysLogSource) Next() (string, bool) {
	if s.rng.Float64() >= sysLogEmitProbability {
		return "", false
	}
	return sysLogLines[s.rng.Intn(len(sysLogLines))], true
}
