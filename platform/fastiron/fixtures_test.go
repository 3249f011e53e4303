package fastiron

// Captured FastIron output used across the parser and driver tests.

const arpV8 = `Total number of ARP entries: 5
Entries in default routing instance:
No.  IP Address       MAC Address     Type     Age  Port    Status
1    10.0.0.1         1122.3344.5566  Dynamic  120  1/1     Valid
2    10.0.0.2         None            Dynamic  0    1/2     Pending
3    10.0.0.254       cc4e.246d.2c00  Static   None mgmt1   Valid
4    10.0.0.9         aabb.ccdd.eeff  Dynamic  abc  1/3     Valid
5    10.0.0.10        aabb.ccdd.ee00  Dynamic  7    1/4
`

const arpV7 = `Total number of ARP entries: 2
No.  IP Address       MAC Address     Type     Age  Port    Status
1    192.168.1.1      0000.5e00.0101  Dynamic  3    1/1/1   Valid
2    192.168.1.20     None            Dynamic  0    1/1/2   Valid
`

const macV8 = `Total active entries from all ports = 4
MAC-Address     Port           Type         VLAN
0000.0000.0001  1/1/1          Dynamic      10
0000.0000.0002  1/1/2          Static       20
0000.0000.0003  1/1/3          Dynamic      abc
None            1/1/4          Dynamic      1
`

const macV7 = `Total active entries from all ports = 2
MAC-Address     Port     Type      Index  VLAN
0000.0000.0001  1/1      Dynamic   1234   10
0000.0000.0002  1/2      Static    88     1
`

const briefV8 = `Port       Link    State   Dupl Speed Trunk Tag Pvid Pri MAC             Name
1/1        Up      Forward Full 1G    None  No  1    0   AABB.CCDD.EEFF  uplink
1/2        Disable None    None None  None  No  1    0   aabb.ccdd.ef00
1/3        Down    None    None None  None  No  1    0   aabb.ccdd.ef01
mgmt1      Up      None    Full 1G    None  No  None 0   cc4e.246d.2c00
`

const detailUp = `GigabitEthernet1/1 is up, line protocol is up
  Port up for 3 day(s) 2 hour(s) 1 minute(s) 5 second(s)
  Hardware is GigabitEthernet, address is aabb.ccdd.eeff (bia aabb.ccdd.eeff)
  Configured speed auto, actual 1Gbit, configured duplex fdx, actual fdx
  Member of L2 VLAN ID 1, port is untagged, port state is FORWARDING
  Port name is uplink
  MTU 1500 bytes, encapsulation ethernet
  300 second input rate: 2000 bits/sec, 2 packets/sec, 0.00% utilization
  300 packets input, 123456 bytes, 0 no buffer
  Received 10 broadcasts, 20 multicasts, 270 unicasts
  1 input errors, 0 CRC, 0 frame, 0 ignored
  5 packets output, 640 bytes, 0 underruns
  Transmitted 1 broadcasts, 2 multicasts, 2 unicasts
  0 output errors, 0 collisions`

const detailDisabled = `GigabitEthernet1/2 is disabled, line protocol is down
  Port down for 10 minute(s) 0 second(s)
  Hardware is GigabitEthernet, address is aabb.ccdd.ef00 (bia aabb.ccdd.ef00)
  Configured speed auto, actual unknown, configured duplex fdx, actual unknown
  Port name is not set`

const detailMgmt = `GigabitEthernetmgmt1 is up, line protocol is up
  Hardware is GigabitEthernet, address is cc4e.246d.2c00 (bia cc4e.246d.2c00)
  Configured speed auto, actual 100Mbit, configured duplex fdx, actual fdx`

const runningConfigInterfaces = ` ip address 8.8.8.8 255.0.0.0
interface ethernet 1/1
 port-name uplink
 ip address 10.0.0.1 255.255.255.0
 ipv6 address 2001:db8::1/64
!
interface ethernet 1/2
 disable
!
interface ve 10
 ip address 192.168.10.1/24
 ip address 192.168.11.1/24 secondary
!
interface loopback 1
 ip address 1.1.1.1 255.255.255.255
!
interface management 1
 ip address 172.16.0.10 255.255.255.0
!
ip route 0.0.0.0/0 10.0.0.254
`

const showVersionV8 = `  Copyright (c) Ruckus Networks, Inc. All rights reserved.
    UNIT 1: compiled on Mar 19 2021 at 02:12:17 labeled as SPR08095h
      (33554432 bytes) from Primary SPR08095h.bin (UFI)
        SW: Version 08.0.95hT213
  Compressed Primary Boot Code size = 786944, Version:10.1.20T225 (spz10120)
  HW: Stackable ICX7150-48P
==========================================================================
UNIT 1: SL 1: ICX7150-48P-4X1G POE 48-port Management Module
         Serial  #:FEK3224R0AB
         Software Package: ICX7150_L3_SOFT_PACKAGE
==========================================================================
  The system uptime is 632 days 18 hours 20 minutes 40 seconds
  The system started at 09:47:14 GMT+00 Sun Jan 15 2023`

const hostnameConfig = `hostname core-sw-01`
